package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmoreira/findash/internal/models"
)

func dreLines() ([]models.DREMonthlyLine, []models.DREAccumulatedLine) {
	monthly := []models.DREMonthlyLine{
		{
			Regime: models.RegimeCaixa, Year: 2025, Company: "Empresa A",
			Line:      models.DRELine{Description: "Receita Bruta"},
			Projected: decimal.NewFromInt(10000), Real: decimal.NewFromInt(9500),
		},
		{
			Regime: models.RegimeCompetencia, Year: 2025, Company: "Empresa A",
			Line:      models.DRELine{Description: "Receita Bruta"},
			Projected: decimal.NewFromInt(10000), Real: decimal.NewFromInt(10200),
		},
	}
	accumulated := []models.DREAccumulatedLine{
		{
			Regime: models.RegimeCaixa, Year: 2025, Company: "Empresa A",
			Line: models.DRELine{Description: "Receita Bruta"},
			Months: [12]decimal.Decimal{
				decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.NewFromInt(300),
			},
			Total: decimal.NewFromInt(600),
		},
		{
			Regime: models.RegimeCompetencia, Year: 2025, Company: "Empresa A",
			Line: models.DRELine{Description: "Receita Bruta"},
			Months: [12]decimal.Decimal{
				decimal.NewFromInt(110), decimal.NewFromInt(210), decimal.NewFromInt(310),
			},
			Total: decimal.NewFromInt(630),
		},
	}
	return monthly, accumulated
}

func TestDre_LoadResetsSelection(t *testing.T) {
	session := NewDre()
	session.SetRegime(models.RegimeCompetencia)
	session.SetPeriod(3, 5)

	session.Load(dreLines())

	assert.Equal(t, models.RegimeCaixa, session.Regime())
	assert.Equal(t, "Empresa A", session.Company())
	assert.Equal(t, 2025, session.Year())
	assert.NotEmpty(t, session.UploadID())
	assert.False(t, session.LoadedAt().IsZero())

	totals := session.PeriodTotals()
	require.Len(t, totals, 1)
	assert.True(t, decimal.NewFromInt(600).Equal(totals[0].Total))
}

func TestDre_RegimeSelection(t *testing.T) {
	session := NewDre()
	session.Load(dreLines())

	session.SetRegime(models.RegimeCompetencia)

	monthly := session.Monthly()
	require.Len(t, monthly, 1)
	assert.True(t, decimal.NewFromInt(10200).Equal(monthly[0].Real))

	session.SetRegime(models.RegimeAmbos)
	assert.Len(t, session.Monthly(), 2)
	assert.Len(t, session.Accumulated(), 2)
}

func TestDre_PeriodSelection(t *testing.T) {
	session := NewDre()
	session.Load(dreLines())

	session.SetPeriod(2, 3)

	totals := session.PeriodTotals()
	require.Len(t, totals, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(totals[0].Total))
}

func TestDre_EmptyLoad(t *testing.T) {
	session := NewDre()
	session.Load(nil, nil)

	assert.Empty(t, session.Monthly())
	assert.Empty(t, session.PeriodTotals())
	assert.Equal(t, "", session.Company())
	assert.Equal(t, 0, session.Year())
}
