package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rmoreira/findash/internal/models"
)

func TestTagTable_Resolve_ExactMatch(t *testing.T) {
	table := DefaultTagTable()

	tests := []struct {
		category string
		expected models.CategoryTag
	}{
		{"Faturamento Bruto", models.TagReceita},
		{"FATURAMENTO LÍQUIDO", models.TagReceita},
		{"Custo Variável", models.TagCustoVariavel},
		{"Custo Fixo (R$)", models.TagCustoFixo},
		{"Imposto Variável", models.TagImposto},
		{"Marketing", models.TagMarketing},
		{"Pessoal", models.TagPessoal},
		{"Resultado (R$)", models.TagResultado},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Resolve(tt.category), "category %q", tt.category)
	}
}

func TestTagTable_Resolve_SubstringFallback(t *testing.T) {
	table := DefaultTagTable()

	tests := []struct {
		category string
		expected models.CategoryTag
	}{
		{"Faturamento Exportação", models.TagReceita},
		{"Imposto Municipal", models.TagImposto},
		{"Resultado Operacional", models.TagResultado},
		{"Custo de Frete", models.TagGasto},
		{"Gastos Gerais", models.TagGasto},
		{"Categoria Nova", models.TagOutros},
		{"", models.TagOutros},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Resolve(tt.category), "category %q", tt.category)
	}
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "CUSTO FIXO (R$)", NormalizeLabel("  custo fixo (r$) "))
}

func TestKind(t *testing.T) {
	assert.Equal(t, models.KindRevenue, Kind(models.TagReceita))
	assert.Equal(t, models.KindExpense, Kind(models.TagCustoFixo))
	assert.Equal(t, models.KindExpense, Kind(models.TagOutros))
	assert.Equal(t, models.KindExpense, Kind(models.TagResultado))
}

func TestExpenseClass(t *testing.T) {
	assert.Equal(t, models.ExpenseFixed, ExpenseClass("Infraestrutura", nil))
	assert.Equal(t, models.ExpenseFixed, ExpenseClass("ADMINISTRATIVO", nil))
	assert.Equal(t, models.ExpenseFixed, ExpenseClass("Folha de Pagamento", nil))
	assert.Equal(t, models.ExpenseVariable, ExpenseClass("Marketing", nil))
	assert.Equal(t, models.ExpenseFixed, ExpenseClass("Seguros", []string{"seguros"}))
}
