package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rmoreira/findash/internal/models"
)

func balanceRows() []models.RawRow {
	row := func(name, grupo, company, debits, credits string) models.RawRow {
		return models.RawRow{
			"Conta": name, "Grupo": grupo, "Empresa": company,
			"Saldo Devedor": debits, "Saldo Credor": credits,
		}
	}
	return []models.RawRow{
		row("Caixa", "Ativo Circulante", "Empresa A", "5000", "0"),
		row("Fornecedores", "Passivo Circulante", "Empresa A", "0", "2000"),
		row("Capital Social", "Patrimônio Líquido", "Empresa A", "0", "3000"),
		row("Banco", "Ativo Circulante", "Empresa B", "800", "0"),
	}
}

func TestBalancete_LoadSelectsFirstCompany(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())

	assert.Equal(t, "Empresa A", session.Company())
	assert.Equal(t, []string{"Empresa A", "Empresa B"}, session.Companies())
	assert.Len(t, session.Filtered(), 3)
}

func TestBalancete_LoadKeepsValidSelection(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())
	session.SetCompany("Empresa B")

	session.Load(balanceRows())

	assert.Equal(t, "Empresa B", session.Company())
}

func TestBalancete_Totals(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())

	totals := session.Totals()

	assert.True(t, decimal.NewFromInt(5000).Equal(totals.Ativo))
	assert.True(t, decimal.NewFromInt(2000).Equal(totals.Passivo))
	assert.True(t, decimal.NewFromInt(3000).Equal(totals.PL))
	assert.True(t, totals.Balanced)
}

func TestBalancete_CompanyScopeChangesTotals(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())
	session.SetCompany("Empresa B")

	totals := session.Totals()

	assert.True(t, decimal.NewFromInt(800).Equal(totals.Ativo))
	assert.False(t, totals.Balanced, "company B carries assets only")
}

func TestBalancete_Ratios(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())

	ratios := session.Ratios()

	assert.True(t, decimal.RequireFromString("0.4").Equal(ratios.LiquidezGeral))
	assert.True(t, decimal.NewFromInt(40).Equal(ratios.Endividamento))
	assert.True(t, decimal.NewFromInt(60).Equal(ratios.Autonomia))
}

func TestBalancete_Ranking(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())

	ranking := session.Ranking(models.GroupAtivo, 5)

	assert.Len(t, ranking.Entries, 1)
	assert.Equal(t, "Caixa", ranking.Entries[0].Name)
	assert.True(t, decimal.NewFromInt(100).Equal(ranking.Coverage))
}

func TestBalancete_CashConcentration(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(balanceRows())

	cash, share := session.CashConcentration()

	assert.True(t, decimal.NewFromInt(5000).Equal(cash))
	assert.True(t, decimal.NewFromInt(100).Equal(share))
}

func TestBalancete_EmptyLoad(t *testing.T) {
	session := NewBalancete(nil)
	session.Load(nil)

	assert.Empty(t, session.Company())
	assert.Empty(t, session.Filtered())
	assert.False(t, session.Totals().Balanced)
}
