package aggregate

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
)

// balanceEpsilon is the tolerance of the balanced-books check: one unit of
// currency absorbs per-account rounding.
var balanceEpsilon = decimal.NewFromInt(1)

// cashAccountMarkers identifies cash and near-cash accounts by name.
var cashAccountMarkers = []string{"caixa", "banco", "aplicação", "aplicacao"}

func sumGroup(accounts []models.BalanceAccount, group models.BalanceGroup) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.Group == group {
			sum = sum.Add(a.Balance.Abs())
		}
	}
	return sum
}

func sumSubgroup(accounts []models.BalanceAccount, group models.BalanceGroup, subgroup models.BalanceSubgroup) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.Group == group && a.Subgroup == subgroup {
			sum = sum.Add(a.Balance.Abs())
		}
	}
	return sum
}

// BalanceSheetTotals sums absolute balances per group and per (group,
// subgroup) and evaluates the balanced-books invariant: assets equal
// liabilities plus equity within one unit of currency.
func BalanceSheetTotals(accounts []models.BalanceAccount) models.BalanceTotals {
	totals := models.BalanceTotals{
		Ativo:              sumGroup(accounts, models.GroupAtivo),
		Passivo:            sumGroup(accounts, models.GroupPassivo),
		PL:                 sumGroup(accounts, models.GroupPL),
		AtivoCirculante:    sumSubgroup(accounts, models.GroupAtivo, models.SubgroupCirculante),
		AtivoNaoCirculante: sumSubgroup(accounts, models.GroupAtivo, models.SubgroupNaoCirculante),
		PassivoCirculante:  sumSubgroup(accounts, models.GroupPassivo, models.SubgroupCirculante),
		PassivoNaoCirc:     sumSubgroup(accounts, models.GroupPassivo, models.SubgroupNaoCirculante),
	}
	diff := totals.Ativo.Sub(totals.Passivo.Add(totals.PL)).Abs()
	totals.Balanced = len(accounts) > 0 && diff.LessThan(balanceEpsilon)
	return totals
}

// BalanceSheetRatios derives the structural ratios from the totals.
//
// LiquidezGeral divides current liabilities by current assets. This is the
// inverse of the textbook current ratio; the direction is preserved from the
// dashboard's historical formula, so read its interpretation accordingly
// before comparing against conventional benchmarks.
func BalanceSheetRatios(totals models.BalanceTotals) models.BalanceRatios {
	ratios := models.BalanceRatios{}
	if totals.AtivoCirculante.IsPositive() {
		ratios.LiquidezGeral = totals.PassivoCirculante.Div(totals.AtivoCirculante)
	}
	if totals.Ativo.IsPositive() {
		ratios.Endividamento = totals.Passivo.Div(totals.Ativo).Mul(hundred)
		ratios.Autonomia = totals.PL.Div(totals.Ativo).Mul(hundred)
	}
	return ratios
}

// RankAccounts builds the top-N accounts by absolute balance, optionally
// restricted to one group ("" means all groups), together with the share of
// the full restricted set the top-N covers.
func RankAccounts(accounts []models.BalanceAccount, group models.BalanceGroup, topN int) models.AccountRanking {
	entries := make([]models.RankedAccount, 0, len(accounts))
	overall := decimal.Zero
	for _, a := range accounts {
		if group != "" && a.Group != group {
			continue
		}
		value := a.Balance.Abs()
		overall = overall.Add(value)
		entries = append(entries, models.RankedAccount{
			Name:     a.AccountName,
			Code:     a.AccountCode,
			Group:    a.Group,
			Subgroup: a.Subgroup,
			Value:    value,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.GreaterThan(entries[j].Value)
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value)
	}

	ranking := models.AccountRanking{Entries: entries, Total: total, Overall: overall}
	if overall.IsPositive() {
		ranking.Coverage = total.Div(overall).Mul(hundred)
	}
	return ranking
}

// CashConcentration sums the absolute balance of cash and near-cash accounts
// and reports it as a share of current assets (zero when there are none).
func CashConcentration(accounts []models.BalanceAccount, totals models.BalanceTotals) (cash, shareOfCurrent decimal.Decimal) {
	for _, a := range accounts {
		lower := strings.ToLower(a.AccountName)
		for _, marker := range cashAccountMarkers {
			if strings.Contains(lower, marker) {
				cash = cash.Add(a.Balance.Abs())
				break
			}
		}
	}
	if totals.AtivoCirculante.IsPositive() {
		shareOfCurrent = cash.Div(totals.AtivoCirculante).Mul(hundred)
	}
	return cash, shareOfCurrent
}
