package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/models"
)

// Balancete is the trial-balance session. Unlike the other dashboards it
// selects exactly one company at a time: on load the selection keeps its
// previous value when still present, else falls to the first company of the
// new data.
type Balancete struct {
	classifier *classify.Classifier
	accounts   []models.BalanceAccount
	company    string
	uploadID   string
	loadedAt   time.Time
}

// NewBalancete creates a trial-balance session. A nil classifier uses the
// default tag table.
func NewBalancete(classifier *classify.Classifier) *Balancete {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	return &Balancete{classifier: classifier}
}

// Load classifies the uploaded rows and replaces the account list.
func (b *Balancete) Load(rows []models.RawRow) {
	b.SetAccounts(b.classifier.ClassifyBalance(rows))
	b.uploadID = uuid.NewString()
	b.loadedAt = time.Now()
}

// SetAccounts replaces the account list directly (snapshot restore path) and
// revalidates the company selection.
func (b *Balancete) SetAccounts(accounts []models.BalanceAccount) {
	b.accounts = accounts
	companies := b.Companies()
	if len(companies) == 0 {
		b.company = ""
		return
	}
	for _, c := range companies {
		if c == b.company {
			return
		}
	}
	b.company = companies[0]
}

// Accounts exposes the current account list for snapshotting.
func (b *Balancete) Accounts() []models.BalanceAccount { return b.accounts }

// UploadID identifies the last upload; empty before the first load.
func (b *Balancete) UploadID() string { return b.uploadID }

// LoadedAt is the time of the last upload.
func (b *Balancete) LoadedAt() time.Time { return b.loadedAt }

// Companies lists the distinct companies of the loaded accounts.
func (b *Balancete) Companies() []string {
	companies := make([]string, 0)
	seen := make(map[string]struct{})
	for _, a := range b.accounts {
		if _, ok := seen[a.Company]; !ok {
			seen[a.Company] = struct{}{}
			companies = append(companies, a.Company)
		}
	}
	return companies
}

// Company is the currently selected company.
func (b *Balancete) Company() string { return b.company }

// SetCompany selects a company. No validation: a company absent from the
// data just yields empty aggregates.
func (b *Balancete) SetCompany(company string) { b.company = company }

// Filtered returns the accounts of the selected company, or all accounts
// when no company is selected.
func (b *Balancete) Filtered() []models.BalanceAccount {
	if b.company == "" {
		return b.accounts
	}
	filtered := make([]models.BalanceAccount, 0, len(b.accounts))
	for _, a := range b.accounts {
		if a.Company == b.company {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Totals is the group/subgroup totals plus the balanced-books flag for the
// selected company.
func (b *Balancete) Totals() models.BalanceTotals {
	return aggregate.BalanceSheetTotals(b.Filtered())
}

// Ratios is the structural ratio set derived from Totals.
func (b *Balancete) Ratios() models.BalanceRatios {
	return aggregate.BalanceSheetRatios(b.Totals())
}

// Ranking is the top-N accounts by absolute balance, optionally restricted
// to one group ("" means all).
func (b *Balancete) Ranking(group models.BalanceGroup, topN int) models.AccountRanking {
	return aggregate.RankAccounts(b.Filtered(), group, topN)
}

// CashConcentration is the cash and near-cash total and its share of
// current assets.
func (b *Balancete) CashConcentration() (cash, shareOfCurrent decimal.Decimal) {
	filtered := b.Filtered()
	return aggregate.CashConcentration(filtered, aggregate.BalanceSheetTotals(filtered))
}
