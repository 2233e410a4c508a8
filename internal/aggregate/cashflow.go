package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"rmoreira/findash/internal/models"
)

var thirty = decimal.NewFromInt(30)

// CashFlow derives the cash-flow KPI set at the given reference time.
//
//   - SaldoAtual nets settled entries (paid or partial): receivables add,
//     payables subtract.
//   - Fluxo30Dias nets entries due between now and thirty days out.
//   - DiasCaixa divides the balance by the average daily open payables,
//     floored, guarded against empty payables.
//   - ContasVencidas counts overdue entries.
func CashFlow(entries []models.CashFlowEntry, now time.Time) models.CashFlowSummary {
	summary := models.CashFlowSummary{}
	horizon := now.AddDate(0, 0, 30)
	openPayables := decimal.Zero

	for _, e := range entries {
		signed := e.Amount
		if e.Type == models.FlowPagar {
			signed = signed.Neg()
		}

		if e.Status == models.StatusPago || e.Status == models.StatusParcial {
			summary.SaldoAtual = summary.SaldoAtual.Add(signed)
		}
		if !e.DueDate.Before(now) && !e.DueDate.After(horizon) {
			summary.Fluxo30Dias = summary.Fluxo30Dias.Add(signed)
		}
		if e.Type == models.FlowPagar && e.Status != models.StatusPago {
			openPayables = openPayables.Add(e.Amount)
		}
		if e.Status == models.StatusAtrasado {
			summary.ContasVencidas++
		}
	}

	if summary.SaldoAtual.IsPositive() {
		daily := openPayables.Div(thirty)
		if daily.IsZero() {
			daily = decimal.NewFromInt(1)
		}
		summary.DiasCaixa = summary.SaldoAtual.Div(daily).Floor().IntPart()
	}
	return summary
}

// FilterCashFlowByPeriod keeps entries whose month falls in [from, to].
func FilterCashFlowByPeriod(entries []models.CashFlowEntry, from, to int) []models.CashFlowEntry {
	filtered := make([]models.CashFlowEntry, 0, len(entries))
	for _, e := range entries {
		if e.Month >= from && e.Month <= to {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
