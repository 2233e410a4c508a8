package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowType separates receivables from payables.
type CashFlowType string

const (
	FlowReceber CashFlowType = "Receber"
	FlowPagar   CashFlowType = "Pagar"
)

// CashFlowStatus is the settlement state of a cash-flow entry.
type CashFlowStatus string

const (
	StatusAberto   CashFlowStatus = "Aberto"
	StatusParcial  CashFlowStatus = "Parcial"
	StatusPago     CashFlowStatus = "Pago"
	StatusAtrasado CashFlowStatus = "Atrasado"
)

// CashFlowEntry is one scheduled receivable or payable.
type CashFlowEntry struct {
	ID       string          `json:"id" csv:"id"`
	Month    int             `json:"mes" csv:"mes"`
	Company  string          `json:"empresa" csv:"empresa"`
	Type     CashFlowType    `json:"tipo" csv:"tipo"`
	Category string          `json:"categoria" csv:"categoria"`
	DueDate  time.Time       `json:"data_vencimento" csv:"-"`
	Amount   decimal.Decimal `json:"valor" csv:"valor"`
	Status   CashFlowStatus  `json:"status" csv:"status"`
}

// BudgetEntry is one budgeted-versus-actual line of the budget dashboard.
type BudgetEntry struct {
	Month    int             `json:"mes" csv:"mes"`
	Company  string          `json:"empresa" csv:"empresa"`
	Category string          `json:"categoria" csv:"categoria"`
	Budgeted decimal.Decimal `json:"orcado" csv:"orcado"`
	Actual   decimal.Decimal `json:"realizado" csv:"realizado"`
	Owner    string          `json:"responsavel,omitempty" csv:"responsavel"`
	Notes    string          `json:"observacoes,omitempty" csv:"observacoes"`
}
