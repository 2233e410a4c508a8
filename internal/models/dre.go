package models

import "github.com/shopspring/decimal"

// DRERegime selects the accounting regime of an income-statement view.
type DRERegime string

const (
	RegimeCaixa       DRERegime = "caixa"
	RegimeCompetencia DRERegime = "competencia"
	// RegimeAmbos selects both regimes at once.
	RegimeAmbos DRERegime = "ambos"
)

// DRELine is one income-statement line description with the structural
// markers parsed out of it.
type DRELine struct {
	Description string `json:"descricao"`
	IsResult    bool   `json:"is_resultado"`
	IsExpense   bool   `json:"is_despesa"`
	IsPercent   bool   `json:"is_percentual"`
	IsFinal     bool   `json:"is_final"`
}

// DREMonthlyLine is one projected-versus-real line of the monthly income
// statement for a single regime.
type DREMonthlyLine struct {
	Regime           DRERegime       `json:"regime"`
	Year             int             `json:"ano"`
	Company          string          `json:"empresa"`
	Line             DRELine         `json:"linha"`
	Projected        decimal.Decimal `json:"projetado"`
	Real             decimal.Decimal `json:"real"`
	Variation        string          `json:"variacao"`
	VerticalAnalysis string          `json:"analise_vertical,omitempty"`
}

// DREAccumulatedLine carries one statement line's value for each month of
// the year plus the annual total.
type DREAccumulatedLine struct {
	Regime           DRERegime           `json:"regime"`
	Year             int                 `json:"ano"`
	Company          string              `json:"empresa"`
	Line             DRELine             `json:"linha"`
	Months           [12]decimal.Decimal `json:"meses"`
	Total            decimal.Decimal     `json:"total"`
	VerticalAnalysis string              `json:"analise_vertical,omitempty"`
}

// DREPeriodTotal is one line's sum over a selected month window.
type DREPeriodTotal struct {
	Line  DRELine         `json:"linha"`
	Total decimal.Decimal `json:"total"`
}
