package aggregate

import (
	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
)

// Budget totals budgeted and actual spend and derives the total variance,
// absolute and as a guarded percentage of the budgeted total.
func Budget(entries []models.BudgetEntry) models.BudgetSummary {
	summary := models.BudgetSummary{}
	for _, e := range entries {
		summary.TotalOrcado = summary.TotalOrcado.Add(e.Budgeted)
		summary.TotalRealizado = summary.TotalRealizado.Add(e.Actual)
	}
	summary.VarianciaTotal = summary.TotalRealizado.Sub(summary.TotalOrcado)
	if summary.TotalOrcado.IsPositive() {
		summary.VarianciaPercentual = summary.VarianciaTotal.Div(summary.TotalOrcado).Mul(hundred)
	}
	return summary
}

// Variance computes one line's actual-minus-budgeted deviation; the
// percentage guards a non-positive budget.
func Variance(budgeted, actual decimal.Decimal) models.BudgetDeviation {
	dev := models.BudgetDeviation{Variance: actual.Sub(budgeted)}
	if budgeted.IsPositive() {
		dev.Percentual = dev.Variance.Div(budgeted).Mul(hundred)
	}
	return dev
}

// BudgetDeviations folds the entries per category and reports each
// category's variance, in first-appearance order.
func BudgetDeviations(entries []models.BudgetEntry) []models.BudgetDeviation {
	order := make([]string, 0)
	budgeted := make(map[string]decimal.Decimal)
	actual := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if _, ok := budgeted[e.Category]; !ok {
			order = append(order, e.Category)
			budgeted[e.Category] = decimal.Zero
			actual[e.Category] = decimal.Zero
		}
		budgeted[e.Category] = budgeted[e.Category].Add(e.Budgeted)
		actual[e.Category] = actual[e.Category].Add(e.Actual)
	}

	deviations := make([]models.BudgetDeviation, 0, len(order))
	for _, cat := range order {
		dev := Variance(budgeted[cat], actual[cat])
		dev.Category = cat
		deviations = append(deviations, dev)
	}
	return deviations
}
