package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/models"
)

// Fluxo is the cash-flow session: scheduled receivables and payables plus
// the derived settlement KPIs.
type Fluxo struct {
	entries  []models.CashFlowEntry
	uploadID string
	loadedAt time.Time
}

// NewFluxo creates a cash-flow session.
func NewFluxo() *Fluxo {
	return &Fluxo{}
}

// Load replaces the entry list wholesale. Entries without an ID get one
// stamped so snapshots stay addressable.
func (f *Fluxo) Load(entries []models.CashFlowEntry) {
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
	}
	f.entries = entries
	f.uploadID = uuid.NewString()
	f.loadedAt = time.Now()
}

// Entries exposes the current entry list for snapshotting.
func (f *Fluxo) Entries() []models.CashFlowEntry { return f.entries }

// UploadID identifies the last upload; empty before the first load.
func (f *Fluxo) UploadID() string { return f.uploadID }

// LoadedAt is the time of the last upload.
func (f *Fluxo) LoadedAt() time.Time { return f.loadedAt }

// Companies lists the distinct companies of the entries.
func (f *Fluxo) Companies() []string {
	return distinctEntryValues(f.entries, func(e models.CashFlowEntry) string { return e.Company })
}

// Categories lists the distinct categories of the entries.
func (f *Fluxo) Categories() []string {
	return distinctEntryValues(f.entries, func(e models.CashFlowEntry) string { return e.Category })
}

func distinctEntryValues(entries []models.CashFlowEntry, key func(models.CashFlowEntry) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, e := range entries {
		k := key(e)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}

// ByCompany returns the entries of one company.
func (f *Fluxo) ByCompany(company string) []models.CashFlowEntry {
	filtered := make([]models.CashFlowEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.Company == company {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ByPeriod returns the entries with month in [from, to].
func (f *Fluxo) ByPeriod(from, to int) []models.CashFlowEntry {
	return aggregate.FilterCashFlowByPeriod(f.entries, from, to)
}

// Summary derives the cash-flow KPI set at the given reference time.
func (f *Fluxo) Summary(now time.Time) models.CashFlowSummary {
	return aggregate.CashFlow(f.entries, now)
}
