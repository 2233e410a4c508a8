package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rmoreira/findash/internal/models"
)

func rec(month, category, company string, amount int64) models.FinancialRecord {
	return models.FinancialRecord{
		Year:     2025,
		Month:    month,
		MonthNum: monthNum(month),
		Company:  company,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func monthNum(month string) int {
	switch month {
	case "Janeiro":
		return 1
	case "Fevereiro":
		return 2
	case "Março":
		return 3
	}
	return 0
}

func TestMonthsInOrder(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Março", "Pessoal", "A", 10),
		rec("Janeiro", "Pessoal", "A", 10),
		rec("Fevereiro", "Pessoal", "A", 10),
		rec("Janeiro", "Marketing", "A", 10),
	}

	assert.Equal(t, []string{"Janeiro", "Fevereiro", "Março"}, MonthsInOrder(records))
}

func TestMonthsInOrder_UnknownMonthSortsFirst(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Pessoal", "A", 10),
		rec("Mes Treze", "Pessoal", "A", 10),
	}

	assert.Equal(t, []string{"Mes Treze", "Janeiro"}, MonthsInOrder(records))
}

func TestMonthsInOrder_Empty(t *testing.T) {
	assert.Empty(t, MonthsInOrder(nil))
}

func TestPeriodSeries(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "A", 1000),
		rec("Janeiro", "Custo Variável", "A", -300),
		rec("Janeiro", "Gastos Gerais", "A", -50),
		rec("Janeiro", "Imposto Variável", "A", -100),
		rec("Janeiro", "Marketing", "A", -200),
		rec("Fevereiro", "Faturamento Bruto", "A", 2000),
	}

	series := PeriodSeries(records)

	assert.Len(t, series, 2)
	assert.Equal(t, "Janeiro", series[0].Month)
	assert.True(t, decimal.NewFromInt(1000).Equal(series[0].Inflow))
	// Marketing is not part of the outflow bucket.
	assert.True(t, decimal.NewFromInt(450).Equal(series[0].Outflow))
	assert.True(t, decimal.NewFromInt(2000).Equal(series[1].Inflow))
	assert.True(t, series[1].Outflow.IsZero())
}

func TestPeriodSeries_Idempotent(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "A", 1000),
		rec("Janeiro", "Custo Fixo (R$)", "A", -400),
	}

	first := PeriodSeries(records)
	second := PeriodSeries(records)
	assert.Equal(t, first, second)
}

func TestPeriodSeries_Empty(t *testing.T) {
	assert.Empty(t, PeriodSeries(nil))
}

func TestCategoryBreakdown(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Custo Variável", "A", -300),
		rec("Janeiro", "Custo Fixo (R$)", "A", -400),
		rec("Janeiro", "Imposto Variável", "A", -100),
		rec("Janeiro", "Marketing", "A", -150),
		rec("Janeiro", "Pessoal", "A", -50),
	}

	breakdown := CategoryBreakdown(records)

	// Fixed insertion order, no re-sort by value.
	names := make([]string, 0, len(breakdown))
	for _, s := range breakdown {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Custo Variável", "Custo Fixo (R$)", "Imposto Variável", "Marketing", "Pessoal"}, names)

	assert.True(t, decimal.NewFromInt(300).Equal(breakdown[0].Value), "values are absolute")
	assert.Equal(t, int64(30), breakdown[0].Percentage)
	assert.Equal(t, int64(40), breakdown[1].Percentage)
}

func TestCategoryBreakdown_DropsZeroGroupsAndPercentagesCloseToHundred(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Custo Variável", "A", -100),
		rec("Janeiro", "Custo Fixo (R$)", "A", -100),
		rec("Janeiro", "Pessoal", "A", -100),
	}

	breakdown := CategoryBreakdown(records)

	assert.Len(t, breakdown, 3, "zero groups are dropped")
	var sum int64
	for _, s := range breakdown {
		sum += s.Percentage
	}
	// Per-item rounding: the sum lands near 100, not exactly on it.
	assert.GreaterOrEqual(t, sum, int64(99))
	assert.LessOrEqual(t, sum, int64(101))
}

func TestCompanyPerformance(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "Empresa B", 500),
		rec("Janeiro", "Faturamento Bruto", "Empresa A", 1000),
		rec("Janeiro", "Custo Variável", "Empresa C", -100),
	}

	performance := CompanyPerformance(records)

	assert.Len(t, performance, 3)
	assert.Equal(t, "Empresa A", performance[0].Name)
	assert.Equal(t, int64(100), performance[0].Performance)
	assert.Equal(t, "Empresa B", performance[1].Name)
	assert.Equal(t, int64(50), performance[1].Performance)
	assert.Equal(t, int64(0), performance[2].Performance)
}

func TestCompanyPerformance_ZeroRevenueDoesNotDivideByZero(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Custo Variável", "Empresa A", -100),
	}

	performance := CompanyPerformance(records)

	assert.Len(t, performance, 1)
	assert.Equal(t, int64(0), performance[0].Performance)
}

func TestSumCategory(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "A", 1000),
		rec("Fevereiro", "Faturamento Bruto", "A", 500),
		rec("Janeiro", "Custo Variável", "A", -300),
	}

	assert.True(t, decimal.NewFromInt(1500).Equal(SumCategory(records, "Faturamento Bruto")))
	assert.True(t, decimal.NewFromInt(-300).Equal(SumCategory(records, "custo variável")))
	assert.True(t, SumCategory(records, "Pessoal").IsZero())
}

func TestKPIs(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "A", 1000),
		rec("Janeiro", "Faturamento Líquido", "A", 900),
		rec("Janeiro", "Custo Variável", "A", -300),
		rec("Janeiro", "Custo Fixo (R$)", "A", -400),
		rec("Janeiro", "Resultado (R$)", "A", 180),
	}

	kpis := KPIs(records)

	assert.True(t, decimal.NewFromInt(1000).Equal(kpis.FaturamentoBruto))
	assert.True(t, decimal.NewFromInt(900).Equal(kpis.FaturamentoLiquido))
	// 900 - |-300|
	assert.True(t, decimal.NewFromInt(600).Equal(kpis.MargemContribuicao))
	assert.True(t, decimal.NewFromInt(60).Equal(kpis.MargemContribuicaoPerc))
	assert.True(t, decimal.NewFromInt(20).Equal(kpis.MargemLiquida))
}

func TestKPIs_FallsBackToGrossRevenue(t *testing.T) {
	records := []models.FinancialRecord{
		rec("Janeiro", "Faturamento Bruto", "A", 1000),
		rec("Janeiro", "Custo Variável", "A", -300),
	}

	kpis := KPIs(records)

	// No net billing line: the contribution margin works off the gross total.
	assert.True(t, decimal.NewFromInt(700).Equal(kpis.MargemContribuicao))
	assert.True(t, decimal.NewFromInt(70).Equal(kpis.MargemContribuicaoPerc))
	assert.True(t, kpis.MargemLiquida.IsZero())
}

func TestKPIs_EmptyInputIsAllZero(t *testing.T) {
	kpis := KPIs(nil)

	assert.True(t, kpis.FaturamentoBruto.IsZero())
	assert.True(t, kpis.MargemContribuicao.IsZero())
	assert.True(t, kpis.MargemContribuicaoPerc.IsZero())
	assert.True(t, kpis.MargemLiquida.IsZero())
}
