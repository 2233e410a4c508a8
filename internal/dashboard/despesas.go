package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/models"
)

// Despesas is the session of the expense dashboard. It keeps revenue rows of
// the upload alongside the expenses so the KPI set can relate spend to
// billing, but every aggregate except that ratio sees expenses only.
type Despesas struct {
	classifier *classify.Classifier
	records    []models.ExpenseRecord
	filter     Filter
	uploadID   string
	loadedAt   time.Time
}

// NewDespesas creates an expense session. A nil classifier uses the default
// tag table.
func NewDespesas(classifier *classify.Classifier) *Despesas {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	return &Despesas{classifier: classifier, filter: NewFilter()}
}

// Load classifies the uploaded rows and resets the filter to all companies,
// the full month set, and no category restriction.
func (d *Despesas) Load(rows []models.RawRow) {
	d.records = d.classifier.ClassifyExpenses(rows)
	d.filter = NewFilter()
	d.filter.Months = d.AvailableMonths()
	d.uploadID = uuid.NewString()
	d.loadedAt = time.Now()
}

// Records exposes the current record list for snapshotting.
func (d *Despesas) Records() []models.ExpenseRecord { return d.records }

// UploadID identifies the last upload; empty before the first load.
func (d *Despesas) UploadID() string { return d.uploadID }

// LoadedAt is the time of the last upload.
func (d *Despesas) LoadedAt() time.Time { return d.loadedAt }

// Filter returns the current scope.
func (d *Despesas) Filter() Filter { return d.filter }

// SetCompany scopes aggregation to one company, or AllCompanies.
func (d *Despesas) SetCompany(company string) { d.filter.Company = company }

// SetMonths scopes aggregation to the given months; empty means all.
func (d *Despesas) SetMonths(months []string) { d.filter.Months = months }

// SetCategories scopes aggregation to the given categories; empty means all.
func (d *Despesas) SetCategories(categories []string) { d.filter.Categories = categories }

// Companies lists the distinct companies, prefixed with AllCompanies.
func (d *Despesas) Companies() []string {
	companies := []string{AllCompanies}
	seen := make(map[string]struct{})
	for _, r := range d.records {
		if _, ok := seen[r.Company]; !ok {
			seen[r.Company] = struct{}{}
			companies = append(companies, r.Company)
		}
	}
	return companies
}

// AvailableMonths lists the distinct months in ordinal order.
func (d *Despesas) AvailableMonths() []string {
	return aggregate.ExpenseMonths(d.records)
}

// AvailableCategories lists the distinct categories, sorted lexically.
func (d *Despesas) AvailableCategories() []string {
	return distinctSorted(d.records, func(r models.ExpenseRecord) string { return r.Category })
}

// AvailableSubcategories lists the distinct subcategories, sorted lexically.
func (d *Despesas) AvailableSubcategories() []string {
	return distinctSorted(d.records, func(r models.ExpenseRecord) string { return r.Subcategory })
}

func distinctSorted(records []models.ExpenseRecord, key func(models.ExpenseRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}

// Filtered returns the expense records passing the full scope. Revenue rows
// never pass; they only feed the billing total of the KPI set.
func (d *Despesas) Filtered() []models.ExpenseRecord {
	filtered := make([]models.ExpenseRecord, 0, len(d.records))
	for _, r := range d.records {
		if r.Kind != models.KindExpense {
			continue
		}
		if d.filter.MatchesCompany(r.Company) && d.filter.MatchesMonth(r.Month) && d.filter.MatchesCategory(r.Category) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// revenueTotal sums the revenue rows under the company/month scope only; the
// category filter applies to expenses, not billing.
func (d *Despesas) revenueTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range d.records {
		if r.Kind == models.KindRevenue && d.filter.MatchesCompany(r.Company) && d.filter.MatchesMonth(r.Month) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Series is the monthly expense total series of the filtered records.
func (d *Despesas) Series() []models.ExpensePoint {
	return aggregate.ExpenseSeries(d.Filtered())
}

// Breakdown is the per-category breakdown, sorted descending by value.
func (d *Despesas) Breakdown() []models.CategorySlice {
	return aggregate.ExpenseBreakdown(d.Filtered())
}

// Evolution is the per-(month, category) series of the top breakdown
// categories.
func (d *Despesas) Evolution() []models.EvolutionPoint {
	filtered := d.Filtered()
	return aggregate.ExpenseEvolution(filtered, aggregate.ExpenseBreakdown(filtered))
}

// KPIs is the expense KPI set of the filtered records.
func (d *Despesas) KPIs() models.ExpenseKPIs {
	return aggregate.ExpenseKPIBundle(d.Filtered(), d.revenueTotal())
}
