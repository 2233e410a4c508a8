package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

// topEvolutionCategories bounds the expense-evolution series to the largest
// categories of the current breakdown.
const topEvolutionCategories = 5

// ExpenseMonths returns the distinct months of the expense records in
// ordinal order, ties by first appearance.
func ExpenseMonths(records []models.ExpenseRecord) []string {
	months := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := seen[r.Month]; !ok {
			seen[r.Month] = struct{}{}
			months = append(months, r.Month)
		}
	}
	sort.SliceStable(months, func(i, j int) bool {
		return normalize.MonthOrdinal(months[i]) < normalize.MonthOrdinal(months[j])
	})
	return months
}

// ExpenseSeries sums the expense total per month.
func ExpenseSeries(records []models.ExpenseRecord) []models.ExpensePoint {
	series := make([]models.ExpensePoint, 0)
	for _, month := range ExpenseMonths(records) {
		total := decimal.Zero
		for _, r := range records {
			if r.Month == month {
				total = total.Add(r.Amount)
			}
		}
		series = append(series, models.ExpensePoint{
			Month:    month,
			MonthNum: normalize.MonthOrdinal(month),
			Total:    total,
		})
	}
	return series
}

// ExpenseBreakdown groups the records by category, drops zero groups, sorts
// descending by value (this call site re-sorts, unlike the overview
// breakdown) and attaches rounded percentages of the total.
func ExpenseBreakdown(records []models.ExpenseRecord) []models.CategorySlice {
	categories := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := seen[r.Category]; !ok {
			seen[r.Category] = struct{}{}
			categories = append(categories, r.Category)
		}
	}

	slices := make([]models.CategorySlice, 0, len(categories))
	for _, cat := range categories {
		value := decimal.Zero
		for _, r := range records {
			if r.Category == cat {
				value = value.Add(r.Amount)
			}
		}
		if value.IsPositive() {
			slices = append(slices, models.CategorySlice{Name: cat, Value: value})
		}
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})
	return attachPercentages(slices)
}

// ExpenseEvolution builds the per-(month, category) series for the top
// categories of the given breakdown. Every (month, category) pair is
// emitted, including zero cells, so chart lines stay continuous.
func ExpenseEvolution(records []models.ExpenseRecord, breakdown []models.CategorySlice) []models.EvolutionPoint {
	top := breakdown
	if len(top) > topEvolutionCategories {
		top = top[:topEvolutionCategories]
	}

	points := make([]models.EvolutionPoint, 0, len(top)*12)
	for _, month := range ExpenseMonths(records) {
		for _, cat := range top {
			value := decimal.Zero
			for _, r := range records {
				if r.Month == month && r.Category == cat.Name {
					value = value.Add(r.Amount)
				}
			}
			points = append(points, models.EvolutionPoint{
				Month:    month,
				Category: cat.Name,
				Value:    value,
			})
		}
	}
	return points
}

// ExpenseKPIBundle derives the expense KPI set. revenue is the billing total
// of the same upload under the company/month filter (category filter and the
// expense restriction do not apply to it); the share-of-billing percentage
// guards a zero denominator.
func ExpenseKPIBundle(records []models.ExpenseRecord, revenue decimal.Decimal) models.ExpenseKPIs {
	total := decimal.Zero
	fixed := decimal.Zero
	months := make(map[string]struct{})
	for _, r := range records {
		total = total.Add(r.Amount)
		if r.Class == models.ExpenseFixed {
			fixed = fixed.Add(r.Amount)
		}
		months[r.Month] = struct{}{}
	}

	kpis := models.ExpenseKPIs{
		TotalDespesas:          total,
		TotalDespesasFixas:     fixed,
		TotalDespesasVariaveis: total.Sub(fixed),
	}
	if len(months) > 0 {
		kpis.TicketMedio = total.Div(decimal.NewFromInt(int64(len(months))))
	}
	if revenue.IsPositive() {
		kpis.PercentualFaturamento = total.Div(revenue).Mul(hundred)
	}
	return kpis
}
