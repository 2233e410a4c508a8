package classify

import (
	"time"

	"github.com/sirupsen/logrus"

	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// fallbackYear is assigned when the year cell is present but not numeric.
const fallbackYear = 2024

// Classifier turns raw rows into typed records using a tag table and the
// configured extra fixed-expense categories. The zero value is not usable;
// construct with New.
type Classifier struct {
	tags       TagTable
	extraFixed []string
	suggester  Suggester
	log        *logrus.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithExtraFixedCategories extends the fixed-expense allow-list.
func WithExtraFixedCategories(categories []string) Option {
	return func(c *Classifier) { c.extraFixed = categories }
}

// WithSuggester attaches an advisory tag suggester consulted for categories
// the table and fallback both fail to resolve. Suggestions are logged, never
// applied silently.
func WithSuggester(s Suggester) Option {
	return func(c *Classifier) { c.suggester = s }
}

// New creates a Classifier over the given tag table. A nil table uses the
// default template mapping.
func New(tags TagTable, opts ...Option) *Classifier {
	if tags == nil {
		tags = DefaultTagTable()
	}
	c := &Classifier{tags: tags, log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requiredFields extracts the five required cells of a financial row. ok is
// false when any of them is missing or blank; the amount cell only has to be
// present, a zero or garbled value still classifies (as zero).
func requiredFields(row models.RawRow) (year, month, category, company string, amount any, ok bool) {
	year = normalize.FieldString(row, "Ano", "ano")
	month = normalize.FieldString(row, "Mes", "mes", "Mês", "mês")
	category = normalize.FieldString(row, "Categoria", "categoria")
	company = normalize.FieldString(row, "Empresa", "empresa")
	amount, hasAmount := normalize.Field(row, "Valor", "valor")

	ok = year != "" && month != "" && category != "" && company != "" && hasAmount
	return year, month, category, company, amount, ok
}

// Classify maps raw rows into financial records for the overview dashboard.
// Rows missing any required field are dropped silently; the caller observes
// only a smaller record set.
func (c *Classifier) Classify(rows []models.RawRow) []models.FinancialRecord {
	records := make([]models.FinancialRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		yearStr, month, category, company, amount, ok := requiredFields(row)
		if !ok {
			dropped++
			continue
		}

		year := normalize.ParseYear(yearStr, fallbackYear)
		monthNum := normalize.MonthOrdinal(month)
		tag := c.resolveTag(category)

		records = append(records, models.FinancialRecord{
			Year:     year,
			Month:    month,
			MonthNum: monthNum,
			Company:  company,
			Category: category,
			Amount:   normalize.ParseAmount(amount),
			Kind:     Kind(tag),
			Date:     monthStart(year, monthNum),
			Tag:      tag,
		})
	}

	if dropped > 0 {
		c.log.WithFields(logrus.Fields{
			"dropped": dropped,
			"kept":    len(records),
		}).Debug("Dropped rows missing required fields")
	}
	if len(records) == 0 {
		c.log.Warn("No valid financial rows in upload")
	}
	return records
}

// ClassifyExpenses maps raw rows into expense records. Amounts are stored as
// absolute values; revenue rows of the same upload are kept (tagged as
// revenue) so the expense KPIs can relate spend to billing.
func (c *Classifier) ClassifyExpenses(rows []models.RawRow) []models.ExpenseRecord {
	records := make([]models.ExpenseRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		yearStr, month, category, company, amount, ok := requiredFields(row)
		if !ok {
			dropped++
			continue
		}

		year := normalize.ParseYear(yearStr, fallbackYear)
		monthNum := normalize.MonthOrdinal(month)
		tag := c.resolveTag(category)

		records = append(records, models.ExpenseRecord{
			Year:        year,
			Month:       month,
			MonthNum:    monthNum,
			Company:     company,
			Category:    category,
			Subcategory: normalize.FieldString(row, "Subcategoria", "subcategoria"),
			Amount:      normalize.ParseAmount(amount).Abs(),
			Kind:        Kind(tag),
			Class:       ExpenseClass(category, c.extraFixed),
			Date:        monthStart(year, monthNum),
		})
	}

	if dropped > 0 {
		c.log.WithFields(logrus.Fields{
			"dropped": dropped,
			"kept":    len(records),
		}).Debug("Dropped expense rows missing required fields")
	}
	if len(records) == 0 {
		c.log.Warn("No valid expense rows in upload")
	}
	return records
}

// resolveTag resolves a category through the table and fallback, consulting
// the advisory suggester only for labels neither could place.
func (c *Classifier) resolveTag(category string) models.CategoryTag {
	tag := c.tags.Resolve(category)
	if tag == models.TagOutros && c.suggester != nil {
		if suggested, ok := c.suggester.SuggestTag(category); ok {
			c.log.WithFields(logrus.Fields{
				"category":  category,
				"suggested": suggested,
			}).Info("Tag suggestion for unmapped category")
		}
	}
	return tag
}

// monthStart anchors a (year, month) pair to the first day of the month.
// Ordinal 0 (unrecognized month) anchors to December of the prior year,
// matching how a zero-based month constructor behaved in the dashboard.
func monthStart(year, monthNum int) time.Time {
	return time.Date(year, time.Month(1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, monthNum-1, 0)
}
