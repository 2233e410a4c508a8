// Package aggregate derives every chart-ready view of the dashboards from
// typed record slices: period series, categorical breakdowns, rankings,
// scalar KPI bundles, and the balance-sheet checks and ratios.
//
// Every function is a pure, total function of its inputs. Callers pass
// already-filtered record slices; empty input degrades to zero values and
// empty slices, and every division guards its denominator and substitutes
// zero. Nothing in this package returns an error or panics.
package aggregate

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

var hundred = decimal.NewFromInt(100)

// outflowSubstrings is the fallback bucket test for records without a
// resolved tag: cost-, spend- and tax-like labels count as outflow.
var outflowSubstrings = []string{"CUSTO", "GASTO", "IMPOSTO"}

// isOutflow reports whether a record participates in the outflow bucket.
func isOutflow(r models.FinancialRecord) bool {
	if r.Tag != "" && r.Tag != models.TagOutros {
		return r.Tag.IsOutflow()
	}
	upper := strings.ToUpper(r.Category)
	for _, s := range outflowSubstrings {
		if strings.Contains(upper, s) {
			return true
		}
	}
	return false
}

// isInflow reports whether a record participates in the inflow bucket.
func isInflow(r models.FinancialRecord) bool {
	if r.Tag != "" && r.Tag != models.TagOutros {
		return r.Tag == models.TagReceita
	}
	return strings.Contains(strings.ToUpper(r.Category), "FATURAMENTO")
}

// MonthsInOrder returns the distinct months of the records, ascending by
// month ordinal with ties kept in first-appearance order. Year is
// deliberately not part of the key: mixing years interleaves same-named
// months, which is the dashboard's historical behavior.
func MonthsInOrder(records []models.FinancialRecord) []string {
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

// PeriodSeries groups the records by month and sums the inflow and outflow
// buckets per month. Outflow is reported as an absolute value.
func PeriodSeries(records []models.FinancialRecord) []models.PeriodPoint {
	series := make([]models.PeriodPoint, 0)
	for _, month := range MonthsInOrder(records) {
		inflow := decimal.Zero
		outflow := decimal.Zero
		for _, r := range records {
			if r.Month != month {
				continue
			}
			if isInflow(r) {
				inflow = inflow.Add(r.Amount)
			}
			if isOutflow(r) {
				outflow = outflow.Add(r.Amount)
			}
		}
		series = append(series, models.PeriodPoint{
			Month:    month,
			MonthNum: normalize.MonthOrdinal(month),
			Inflow:   inflow,
			Outflow:  outflow.Abs(),
		})
	}
	return series
}

// overviewCategories is the fixed category list of the overview breakdown.
// The result keeps this insertion order; unlike the expense breakdown it is
// not re-sorted by value (call-site behaviors differ on purpose).
var overviewCategories = []string{
	"Custo Variável",
	"Custo Fixo (R$)",
	"Imposto Variável",
	"Marketing",
	"Pessoal",
}

// CategoryBreakdown sums abs(amount) per fixed overview category by
// case-insensitive substring match, drops zero groups, and attaches each
// group's rounded share of the breakdown total.
func CategoryBreakdown(records []models.FinancialRecord) []models.CategorySlice {
	slices := make([]models.CategorySlice, 0, len(overviewCategories))
	for _, cat := range overviewCategories {
		value := SumCategory(records, cat).Abs()
		if value.IsZero() {
			continue
		}
		slices = append(slices, models.CategorySlice{Name: cat, Value: value})
	}
	return attachPercentages(slices)
}

// attachPercentages computes each slice's rounded percentage of the total.
// Rounding is per item, so the percentages sum to 100 only approximately.
func attachPercentages(slices []models.CategorySlice) []models.CategorySlice {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	for i := range slices {
		if total.IsPositive() {
			slices[i].Percentage = slices[i].Value.Div(total).Mul(hundred).Round(0).IntPart()
		}
	}
	return slices
}

// CompanyPerformance scales each company's revenue against the best
// performer of the set (floored at one to avoid a zero denominator) and
// sorts descending by the rounded percentage.
func CompanyPerformance(records []models.FinancialRecord) []models.CompanyPerformance {
	companies := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		if _, ok := seen[r.Company]; !ok {
			seen[r.Company] = struct{}{}
			companies = append(companies, r.Company)
		}
	}

	revenues := make(map[string]decimal.Decimal, len(companies))
	maxRevenue := decimal.NewFromInt(1)
	for _, company := range companies {
		revenue := decimal.Zero
		for _, r := range records {
			if r.Company == company && isInflow(r) {
				revenue = revenue.Add(r.Amount)
			}
		}
		revenues[company] = revenue
		if revenue.GreaterThan(maxRevenue) {
			maxRevenue = revenue
		}
	}

	performance := make([]models.CompanyPerformance, 0, len(companies))
	for _, company := range companies {
		performance = append(performance, models.CompanyPerformance{
			Name:        company,
			Performance: revenues[company].Div(maxRevenue).Mul(hundred).Round(0).IntPart(),
		})
	}
	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Performance > performance[j].Performance
	})
	return performance
}

// SumCategory sums the signed amounts of records whose category contains the
// given label, case-insensitively.
func SumCategory(records []models.FinancialRecord, label string) decimal.Decimal {
	upper := strings.ToUpper(label)
	sum := decimal.Zero
	for _, r := range records {
		if strings.Contains(strings.ToUpper(r.Category), upper) {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// KPIs derives the overview KPI bundle. The contribution margin subtracts
// the absolute variable cost from net revenue; both margin percentages guard
// their denominators and degrade to zero.
func KPIs(records []models.FinancialRecord) models.KPIBundle {
	faturamentoBruto := SumCategory(records, "Faturamento Bruto")
	faturamentoLiquido := SumCategory(records, "Faturamento Líquido")
	custoVariavel := SumCategory(records, "Custo Variável")
	custoFixo := SumCategory(records, "Custo Fixo (R$)")
	resultado := SumCategory(records, "RESULTADO (R$)")

	// Contribution margin works off net revenue; uploads that only carry a
	// gross billing line fall back to it.
	baseReceita := faturamentoLiquido
	if baseReceita.IsZero() {
		baseReceita = faturamentoBruto
	}
	margemContribuicao := baseReceita.Sub(custoVariavel.Abs())

	bundle := models.KPIBundle{
		FaturamentoBruto:   faturamentoBruto,
		FaturamentoLiquido: faturamentoLiquido,
		CustoVariavel:      custoVariavel,
		CustoFixo:          custoFixo,
		MargemContribuicao: margemContribuicao,
		Resultado:          resultado,
	}
	if faturamentoBruto.IsPositive() {
		bundle.MargemContribuicaoPerc = margemContribuicao.Div(faturamentoBruto).Mul(hundred)
	}
	if faturamentoLiquido.IsPositive() {
		bundle.MargemLiquida = resultado.Div(faturamentoLiquido).Mul(hundred)
	}
	return bundle
}
