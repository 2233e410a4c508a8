package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/models"
)

// Orcamento is the budget session: budgeted-versus-actual lines and their
// derived variance views.
type Orcamento struct {
	entries  []models.BudgetEntry
	uploadID string
	loadedAt time.Time
}

// NewOrcamento creates a budget session.
func NewOrcamento() *Orcamento {
	return &Orcamento{}
}

// Load replaces the entry list wholesale.
func (o *Orcamento) Load(entries []models.BudgetEntry) {
	o.entries = entries
	o.uploadID = uuid.NewString()
	o.loadedAt = time.Now()
}

// Entries exposes the current entry list for snapshotting.
func (o *Orcamento) Entries() []models.BudgetEntry { return o.entries }

// UploadID identifies the last upload; empty before the first load.
func (o *Orcamento) UploadID() string { return o.uploadID }

// LoadedAt is the time of the last upload.
func (o *Orcamento) LoadedAt() time.Time { return o.loadedAt }

// Companies lists the distinct companies of the entries.
func (o *Orcamento) Companies() []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, e := range o.entries {
		if _, ok := seen[e.Company]; !ok {
			seen[e.Company] = struct{}{}
			values = append(values, e.Company)
		}
	}
	sort.Strings(values)
	return values
}

// Categories lists the distinct categories of the entries.
func (o *Orcamento) Categories() []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, e := range o.entries {
		if _, ok := seen[e.Category]; !ok {
			seen[e.Category] = struct{}{}
			values = append(values, e.Category)
		}
	}
	sort.Strings(values)
	return values
}

// Summary is the budget KPI set over all entries.
func (o *Orcamento) Summary() models.BudgetSummary {
	return aggregate.Budget(o.entries)
}

// Deviations is the per-category budgeted-versus-actual variance listing.
func (o *Orcamento) Deviations() []models.BudgetDeviation {
	return aggregate.BudgetDeviations(o.entries)
}
