package dashboard

import (
	"time"

	"github.com/google/uuid"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/models"
)

// Overview is the session of the overview dashboard: the classified record
// list, its filter scope, and the upload metadata of the last load.
type Overview struct {
	classifier *classify.Classifier
	records    []models.FinancialRecord
	filter     Filter
	uploadID   string
	loadedAt   time.Time
}

// NewOverview creates an overview session. A nil classifier uses the default
// tag table.
func NewOverview(classifier *classify.Classifier) *Overview {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	return &Overview{classifier: classifier, filter: NewFilter()}
}

// Load classifies the uploaded rows and replaces the session's records
// wholesale. The filter resets to all companies and the full month set of
// the new data; each load stamps a fresh upload ID for snapshotting.
func (o *Overview) Load(rows []models.RawRow) {
	o.records = o.classifier.Classify(rows)
	o.filter = NewFilter()
	o.filter.Months = aggregate.MonthsInOrder(o.records)
	o.uploadID = uuid.NewString()
	o.loadedAt = time.Now()
}

// Records exposes the current record list for opaque snapshotting by the
// persistence collaborator.
func (o *Overview) Records() []models.FinancialRecord { return o.records }

// UploadID identifies the last upload; empty before the first load.
func (o *Overview) UploadID() string { return o.uploadID }

// LoadedAt is the time of the last upload.
func (o *Overview) LoadedAt() time.Time { return o.loadedAt }

// Filter returns the current scope.
func (o *Overview) Filter() Filter { return o.filter }

// SetCompany scopes aggregation to one company, or AllCompanies.
func (o *Overview) SetCompany(company string) { o.filter.Company = company }

// SetMonths scopes aggregation to the given months; empty means all.
func (o *Overview) SetMonths(months []string) { o.filter.Months = months }

// Companies lists the distinct companies of the loaded data, prefixed with
// the AllCompanies pseudo-entry for selection controls.
func (o *Overview) Companies() []string {
	companies := []string{AllCompanies}
	seen := make(map[string]struct{})
	for _, r := range o.records {
		if _, ok := seen[r.Company]; !ok {
			seen[r.Company] = struct{}{}
			companies = append(companies, r.Company)
		}
	}
	return companies
}

// AvailableMonths lists the distinct months of the loaded data in ordinal
// order, for selection controls.
func (o *Overview) AvailableMonths() []string {
	return aggregate.MonthsInOrder(o.records)
}

// Filtered returns the records passing the current scope.
func (o *Overview) Filtered() []models.FinancialRecord {
	filtered := make([]models.FinancialRecord, 0, len(o.records))
	for _, r := range o.records {
		if o.filter.MatchesCompany(r.Company) && o.filter.MatchesMonth(r.Month) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// PeriodSeries is the monthly inflow/outflow series of the filtered records.
func (o *Overview) PeriodSeries() []models.PeriodPoint {
	return aggregate.PeriodSeries(o.Filtered())
}

// CategoryBreakdown is the fixed-category breakdown of the filtered records.
func (o *Overview) CategoryBreakdown() []models.CategorySlice {
	return aggregate.CategoryBreakdown(o.Filtered())
}

// CompanyPerformance ranks companies by revenue within the scope.
func (o *Overview) CompanyPerformance() []models.CompanyPerformance {
	return aggregate.CompanyPerformance(o.Filtered())
}

// KPIs is the scalar KPI bundle of the filtered records.
func (o *Overview) KPIs() models.KPIBundle {
	return aggregate.KPIs(o.Filtered())
}
