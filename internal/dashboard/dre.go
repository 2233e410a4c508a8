package dashboard

import (
	"time"

	"github.com/google/uuid"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/models"
)

// Dre is the income-statement session: the monthly and accumulated line
// sets of an upload plus the regime and period selection applied to them.
type Dre struct {
	monthly     []models.DREMonthlyLine
	accumulated []models.DREAccumulatedLine
	regime      models.DRERegime
	periodFrom  int
	periodTo    int
	uploadID    string
	loadedAt    time.Time
}

// NewDre creates an income-statement session.
func NewDre() *Dre {
	return &Dre{}
}

// Load replaces both line sets and resets the selection: cash regime,
// full-year period.
func (d *Dre) Load(monthly []models.DREMonthlyLine, accumulated []models.DREAccumulatedLine) {
	d.monthly = monthly
	d.accumulated = accumulated
	d.regime = models.RegimeCaixa
	d.periodFrom = 1
	d.periodTo = 12
	d.uploadID = uuid.NewString()
	d.loadedAt = time.Now()
}

// SetRegime selects the regime to view.
func (d *Dre) SetRegime(regime models.DRERegime) { d.regime = regime }

// SetPeriod selects the accumulated month window, 1-based inclusive.
func (d *Dre) SetPeriod(from, to int) {
	d.periodFrom = from
	d.periodTo = to
}

// Regime is the current regime selection.
func (d *Dre) Regime() models.DRERegime { return d.regime }

// UploadID identifies the last upload; empty before the first load.
func (d *Dre) UploadID() string { return d.uploadID }

// LoadedAt is the time of the last upload.
func (d *Dre) LoadedAt() time.Time { return d.loadedAt }

// Company is the statement's company, taken from the first loaded line.
func (d *Dre) Company() string {
	if len(d.monthly) > 0 {
		return d.monthly[0].Company
	}
	if len(d.accumulated) > 0 {
		return d.accumulated[0].Company
	}
	return ""
}

// Year is the statement's year, taken from the first loaded line.
func (d *Dre) Year() int {
	if len(d.monthly) > 0 {
		return d.monthly[0].Year
	}
	if len(d.accumulated) > 0 {
		return d.accumulated[0].Year
	}
	return 0
}

// Monthly is the monthly statement under the regime selection.
func (d *Dre) Monthly() []models.DREMonthlyLine {
	return aggregate.FilterDREMonthly(d.monthly, d.regime)
}

// Accumulated is the accumulated statement under the regime selection.
func (d *Dre) Accumulated() []models.DREAccumulatedLine {
	return aggregate.FilterDREAccumulated(d.accumulated, d.regime)
}

// PeriodTotals sums the scoped accumulated lines over the selected window.
func (d *Dre) PeriodTotals() []models.DREPeriodTotal {
	return aggregate.DREPeriodTotals(d.Accumulated(), d.periodFrom, d.periodTo)
}
