package models

import "github.com/shopspring/decimal"

// PeriodPoint is one month of the inflow/outflow series. Outflow is reported
// as an absolute value.
type PeriodPoint struct {
	Month    string          `json:"month" csv:"month"`
	MonthNum int             `json:"mes_num" csv:"mes_num"`
	Inflow   decimal.Decimal `json:"inflow" csv:"inflow"`
	Outflow  decimal.Decimal `json:"outflow" csv:"outflow"`
}

// CategorySlice is one group of a categorical breakdown. Percentage is the
// rounded share of the breakdown total.
type CategorySlice struct {
	Name       string          `json:"name" csv:"name"`
	Value      decimal.Decimal `json:"value" csv:"value"`
	Percentage int64           `json:"percentage" csv:"percentage"`
}

// CompanyPerformance is one company's revenue scaled against the best
// performer of the filtered set.
type CompanyPerformance struct {
	Name        string `json:"name" csv:"name"`
	Performance int64  `json:"performance" csv:"performance"`
}

// KPIBundle is the scalar KPI set of the overview dashboard.
type KPIBundle struct {
	FaturamentoBruto       decimal.Decimal `json:"faturamento_bruto"`
	FaturamentoLiquido     decimal.Decimal `json:"faturamento_liquido"`
	CustoVariavel          decimal.Decimal `json:"custo_variavel"`
	CustoFixo              decimal.Decimal `json:"custo_fixo"`
	MargemContribuicao     decimal.Decimal `json:"margem_contribuicao"`
	MargemContribuicaoPerc decimal.Decimal `json:"margem_contribuicao_perc"`
	Resultado              decimal.Decimal `json:"resultado"`
	MargemLiquida          decimal.Decimal `json:"margem_liquida"`
}

// ExpenseKPIs is the scalar KPI set of the expense dashboard.
type ExpenseKPIs struct {
	TotalDespesas          decimal.Decimal `json:"total_despesas"`
	TotalDespesasFixas     decimal.Decimal `json:"total_despesas_fixas"`
	TotalDespesasVariaveis decimal.Decimal `json:"total_despesas_variaveis"`
	TicketMedio            decimal.Decimal `json:"ticket_medio"`
	PercentualFaturamento  decimal.Decimal `json:"percentual_faturamento"`
}

// ExpensePoint is one month of the expense total series.
type ExpensePoint struct {
	Month    string          `json:"month" csv:"month"`
	MonthNum int             `json:"mes_num" csv:"mes_num"`
	Total    decimal.Decimal `json:"total" csv:"total"`
}

// EvolutionPoint is one (month, category) cell of the expense-evolution
// series, restricted to the top expense categories.
type EvolutionPoint struct {
	Month    string          `json:"month" csv:"month"`
	Category string          `json:"categoria" csv:"categoria"`
	Value    decimal.Decimal `json:"valor" csv:"valor"`
}

// BalanceTotals carries the absolute group and subgroup sums of a filtered
// trial balance together with the balanced-books flag.
type BalanceTotals struct {
	Ativo              decimal.Decimal `json:"ativo"`
	Passivo            decimal.Decimal `json:"passivo"`
	PL                 decimal.Decimal `json:"pl"`
	AtivoCirculante    decimal.Decimal `json:"ativo_circulante"`
	AtivoNaoCirculante decimal.Decimal `json:"ativo_nao_circulante"`
	PassivoCirculante  decimal.Decimal `json:"passivo_circulante"`
	PassivoNaoCirc     decimal.Decimal `json:"passivo_nao_circulante"`
	Balanced           bool            `json:"balanceado"`
}

// BalanceRatios carries the structural ratios derived from BalanceTotals.
// LiquidezGeral keeps the dashboard's historical liabilities/assets
// direction, which is inverted from the textbook current ratio; see the
// package documentation before "fixing" it.
type BalanceRatios struct {
	LiquidezGeral decimal.Decimal `json:"liquidez_geral"`
	Endividamento decimal.Decimal `json:"endividamento"`
	Autonomia     decimal.Decimal `json:"autonomia"`
}

// RankedAccount is one entry of a top-N account ranking.
type RankedAccount struct {
	Name     string          `json:"nome" csv:"nome"`
	Code     string          `json:"conta" csv:"conta"`
	Group    BalanceGroup    `json:"grupo" csv:"grupo"`
	Subgroup BalanceSubgroup `json:"subgrupo" csv:"subgrupo"`
	Value    decimal.Decimal `json:"valor" csv:"valor"`
}

// AccountRanking is the top-N accounts by absolute balance plus their share
// of the full filtered set.
type AccountRanking struct {
	Entries  []RankedAccount `json:"entries"`
	Total    decimal.Decimal `json:"total"`
	Overall  decimal.Decimal `json:"total_geral"`
	Coverage decimal.Decimal `json:"cobertura"`
}

// CashFlowSummary is the scalar KPI set of the cash-flow dashboard.
type CashFlowSummary struct {
	SaldoAtual     decimal.Decimal `json:"saldo_atual"`
	Fluxo30Dias    decimal.Decimal `json:"fluxo_30_dias"`
	DiasCaixa      int64           `json:"dias_caixa"`
	ContasVencidas int             `json:"contas_vencidas"`
}

// BudgetSummary is the scalar KPI set of the budget dashboard.
type BudgetSummary struct {
	TotalOrcado         decimal.Decimal `json:"total_orcado"`
	TotalRealizado      decimal.Decimal `json:"total_realizado"`
	VarianciaTotal      decimal.Decimal `json:"variancia_total"`
	VarianciaPercentual decimal.Decimal `json:"variancia_percentual"`
}

// BudgetDeviation is one category's budgeted-versus-actual deviation.
type BudgetDeviation struct {
	Category   string          `json:"categoria" csv:"categoria"`
	Variance   decimal.Decimal `json:"variancia" csv:"variancia"`
	Percentual decimal.Decimal `json:"percentual" csv:"percentual"`
}
