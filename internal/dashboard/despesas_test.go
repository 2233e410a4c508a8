package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rmoreira/findash/internal/models"
)

func expenseRows() []models.RawRow {
	row := func(month, category, subcategory, company, amount string) models.RawRow {
		return models.RawRow{
			"Ano": 2025, "Mes": month, "Categoria": category,
			"Subcategoria": subcategory, "Empresa": company, "Valor": amount,
		}
	}
	return []models.RawRow{
		row("Janeiro", "Faturamento Bruto", "", "Empresa A", "2000"),
		row("Janeiro", "Infraestrutura", "Aluguel", "Empresa A", "-300"),
		row("Janeiro", "Marketing", "Anúncios", "Empresa A", "-100"),
		row("Fevereiro", "Marketing", "Eventos", "Empresa A", "-200"),
		row("Janeiro", "Marketing", "Anúncios", "Empresa B", "-50"),
	}
}

func TestDespesas_Load(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())

	assert.Len(t, session.Records(), 5, "revenue rows stay in the record list")
	assert.Equal(t, []string{"Janeiro", "Fevereiro"}, session.Filter().Months)
	assert.NotEmpty(t, session.UploadID())
}

func TestDespesas_FilteredExcludesRevenue(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())

	for _, r := range session.Filtered() {
		assert.Equal(t, models.KindExpense, r.Kind)
	}
	assert.Len(t, session.Filtered(), 4)
}

func TestDespesas_AvailableCategoriesSorted(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())

	assert.Equal(t, []string{"Faturamento Bruto", "Infraestrutura", "Marketing"}, session.AvailableCategories())
	assert.Equal(t, []string{"", "Aluguel", "Anúncios", "Eventos"}, session.AvailableSubcategories())
}

func TestDespesas_CategoryFilter(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())

	session.SetCategories([]string{"Marketing"})

	breakdown := session.Breakdown()
	assert.Len(t, breakdown, 1)
	assert.Equal(t, "Marketing", breakdown[0].Name)
	assert.True(t, decimal.NewFromInt(350).Equal(breakdown[0].Value))
}

func TestDespesas_KPIRevenueIgnoresCategoryFilter(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())
	session.SetCompany("Empresa A")
	session.SetCategories([]string{"Marketing"})

	kpis := session.KPIs()

	// Expenses: Marketing only (100 + 200); billing: the full 2000.
	assert.True(t, decimal.NewFromInt(300).Equal(kpis.TotalDespesas))
	assert.True(t, decimal.NewFromInt(15).Equal(kpis.PercentualFaturamento))
}

func TestDespesas_KPIClassSplit(t *testing.T) {
	session := NewDespesas(nil)
	session.Load(expenseRows())
	session.SetCompany("Empresa A")

	kpis := session.KPIs()

	assert.True(t, decimal.NewFromInt(600).Equal(kpis.TotalDespesas))
	assert.True(t, decimal.NewFromInt(300).Equal(kpis.TotalDespesasFixas), "Infraestrutura is on the fixed allow-list")
	assert.True(t, decimal.NewFromInt(300).Equal(kpis.TotalDespesasVariaveis))
}
