// Package classify maps raw uploaded rows into the typed record shapes the
// aggregation engine consumes. Classification never returns an error: rows
// missing required fields are dropped with a debug-level diagnostic, and a
// batch degrades to an empty record set rather than a partial failure.
package classify

import (
	"strings"

	"rmoreira/findash/internal/models"
)

// TagTable is the declarative mapping from canonical category labels to
// semantic tags. Lookup is case-insensitive on the exact label; substring
// matching against the free-text label is only the fallback for labels the
// table does not know, kept for compatibility with older exports.
type TagTable map[string]models.CategoryTag

// DefaultTagTable returns the mapping for the standard export template.
func DefaultTagTable() TagTable {
	return TagTable{
		"FATURAMENTO BRUTO":   models.TagReceita,
		"FATURAMENTO LÍQUIDO": models.TagReceita,
		"CUSTO VARIÁVEL":      models.TagCustoVariavel,
		"CUSTO FIXO (R$)":     models.TagCustoFixo,
		"IMPOSTO VARIÁVEL":    models.TagImposto,
		"MARKETING":           models.TagMarketing,
		"PESSOAL":             models.TagPessoal,
		"RESULTADO (R$)":      models.TagResultado,
	}
}

// NormalizeLabel canonicalizes a category label for table lookup.
func NormalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// Resolve assigns a tag to a category label: exact table match first, then
// the documented substring fallback.
func (t TagTable) Resolve(category string) models.CategoryTag {
	upper := NormalizeLabel(category)
	if tag, ok := t[upper]; ok {
		return tag
	}
	switch {
	case strings.Contains(upper, "FATURAMENTO"):
		return models.TagReceita
	case strings.Contains(upper, "IMPOSTO"):
		return models.TagImposto
	case strings.Contains(upper, "RESULTADO"):
		return models.TagResultado
	case strings.Contains(upper, "CUSTO"), strings.Contains(upper, "GASTO"):
		return models.TagGasto
	}
	return models.TagOutros
}

// Kind derives the revenue/expense split from a resolved tag.
func Kind(tag models.CategoryTag) models.RecordKind {
	if tag == models.TagReceita {
		return models.KindRevenue
	}
	return models.KindExpense
}

// fixedExpenseCategories is the allow-list of categories classified as fixed
// spend. Everything else is variable.
var fixedExpenseCategories = map[string]struct{}{
	"INFRAESTRUTURA":     {},
	"ADMINISTRATIVO":     {},
	"FOLHA DE PAGAMENTO": {},
}

// ExpenseClass classifies an expense category as fixed or variable by exact
// allow-list match, optionally extended with configured extra categories.
func ExpenseClass(category string, extra []string) models.ExpenseClass {
	upper := strings.ToUpper(strings.TrimSpace(category))
	if _, ok := fixedExpenseCategories[upper]; ok {
		return models.ExpenseFixed
	}
	for _, c := range extra {
		if strings.EqualFold(strings.TrimSpace(c), upper) {
			return models.ExpenseFixed
		}
	}
	return models.ExpenseVariable
}
