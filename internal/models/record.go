package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind separates revenue lines from expense lines.
type RecordKind string

const (
	// KindRevenue marks a record whose category resolves to a revenue tag.
	KindRevenue RecordKind = "receita"
	// KindExpense marks every other record.
	KindExpense RecordKind = "despesa"
)

// ExpenseClass separates fixed from variable expenses.
type ExpenseClass string

const (
	// ExpenseFixed marks expenses in categories from the fixed allow-list
	// (infrastructure, administrative, payroll).
	ExpenseFixed ExpenseClass = "fixa"
	// ExpenseVariable marks every other expense.
	ExpenseVariable ExpenseClass = "variavel"
)

// CategoryTag is the semantic bucket a category label resolves to. Tags are
// assigned by the declarative mapping table first; substring matching on the
// free-text label is retained only as a fallback for labels the table does
// not know.
type CategoryTag string

const (
	// TagReceita covers revenue categories (gross and net billing).
	TagReceita CategoryTag = "receita"
	// TagCustoVariavel covers variable-cost categories.
	TagCustoVariavel CategoryTag = "custo_variavel"
	// TagCustoFixo covers fixed-cost categories.
	TagCustoFixo CategoryTag = "custo_fixo"
	// TagImposto covers tax categories.
	TagImposto CategoryTag = "imposto"
	// TagMarketing covers marketing spend.
	TagMarketing CategoryTag = "marketing"
	// TagPessoal covers personnel spend.
	TagPessoal CategoryTag = "pessoal"
	// TagResultado covers bottom-line result categories.
	TagResultado CategoryTag = "resultado"
	// TagGasto is the fallback bucket for cost-like labels matched only by
	// substring (CUSTO/GASTO).
	TagGasto CategoryTag = "gasto"
	// TagOutros is assigned when neither the table nor the fallback matches.
	TagOutros CategoryTag = "outros"
)

// IsOutflow reports whether the tag participates in the outflow bucket of the
// period series. Marketing and personnel are deliberately excluded, matching
// the dashboard's historical bucket definition.
func (t CategoryTag) IsOutflow() bool {
	switch t {
	case TagCustoVariavel, TagCustoFixo, TagImposto, TagGasto:
		return true
	}
	return false
}

// FinancialRecord is one classified financial line of the overview dashboard.
// Immutable once created; the owning dashboard replaces its record list
// wholesale on every upload.
type FinancialRecord struct {
	Year     int             `json:"ano" csv:"ano"`
	Month    string          `json:"mes" csv:"mes"`
	MonthNum int             `json:"mes_num" csv:"mes_num"`
	Company  string          `json:"empresa" csv:"empresa"`
	Category string          `json:"categoria" csv:"categoria"`
	Amount   decimal.Decimal `json:"valor" csv:"valor"`
	Kind     RecordKind      `json:"tipo" csv:"tipo"`
	Date     time.Time       `json:"data" csv:"-"`
	Tag      CategoryTag     `json:"tag" csv:"tag"`
}

// ExpenseRecord is the expense-dashboard specialization of a financial line.
// Amounts are stored as absolute values; the revenue companions of the same
// upload keep their kind so the expense KPIs can relate spend to billing.
type ExpenseRecord struct {
	Year        int             `json:"ano" csv:"ano"`
	Month       string          `json:"mes" csv:"mes"`
	MonthNum    int             `json:"mes_num" csv:"mes_num"`
	Company     string          `json:"empresa" csv:"empresa"`
	Category    string          `json:"categoria" csv:"categoria"`
	Subcategory string          `json:"subcategoria" csv:"subcategoria"`
	Amount      decimal.Decimal `json:"valor" csv:"valor"`
	Kind        RecordKind      `json:"tipo" csv:"tipo"`
	Class       ExpenseClass    `json:"classe" csv:"classe"`
	Date        time.Time       `json:"data" csv:"-"`
}
