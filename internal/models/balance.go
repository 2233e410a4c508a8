package models

import "github.com/shopspring/decimal"

// BalanceGroup is the top-level balance-sheet grouping.
type BalanceGroup string

const (
	GroupAtivo   BalanceGroup = "Ativo"
	GroupPassivo BalanceGroup = "Passivo"
	GroupPL      BalanceGroup = "PL"
)

// BalanceSubgroup refines a balance group.
type BalanceSubgroup string

const (
	SubgroupCirculante    BalanceSubgroup = "Circulante"
	SubgroupNaoCirculante BalanceSubgroup = "Não Circulante"
	SubgroupCapital       BalanceSubgroup = "Capital"
	SubgroupReservas      BalanceSubgroup = "Reservas"
	SubgroupResultados    BalanceSubgroup = "Resultados"
)

// BalanceAccount is one trial-balance line for a company snapshot.
// Credits are stored negative; totals and rankings report absolute values.
type BalanceAccount struct {
	AsOf         string          `json:"data" csv:"data"`
	AccountCode  string          `json:"conta_contabil" csv:"conta_contabil"`
	AccountName  string          `json:"nome_conta" csv:"nome_conta"`
	Group        BalanceGroup    `json:"grupo" csv:"grupo"`
	Subgroup     BalanceSubgroup `json:"subgrupo" csv:"subgrupo"`
	TotalDebits  decimal.Decimal `json:"total_debitos" csv:"total_debitos"`
	TotalCredits decimal.Decimal `json:"total_creditos" csv:"total_creditos"`
	Balance      decimal.Decimal `json:"saldo" csv:"saldo"`
	Company      string          `json:"empresa" csv:"empresa"`
}
