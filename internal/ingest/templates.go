package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/normalize"
)

// dueDateLayout is the Brazilian date format of the cash-flow template.
const dueDateLayout = "02/01/2006"

// cashFlowRow maps one line of the cash-flow CSV template.
type cashFlowRow struct {
	ID        string `csv:"id"`
	Mes       string `csv:"mes"`
	Empresa   string `csv:"empresa"`
	Tipo      string `csv:"tipo"`
	Categoria string `csv:"categoria"`
	DataVenc  string `csv:"data_vencimento"`
	Valor     string `csv:"valor"`
	Status    string `csv:"status"`
}

// budgetRow maps one line of the budget CSV template.
type budgetRow struct {
	Mes         string `csv:"mes"`
	Empresa     string `csv:"empresa"`
	Categoria   string `csv:"categoria"`
	Orcado      string `csv:"orcado"`
	Realizado   string `csv:"realizado"`
	Responsavel string `csv:"responsavel"`
	Observacoes string `csv:"observacoes"`
}

// readTemplate parses a fixed-template CSV into typed rows using gocsv,
// honoring the package Delimiter.
func readTemplate[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening template file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close template file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true

	var rows []T
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing template file: %w", err)
	}
	return rows, nil
}

// ReadCashFlow reads the cash-flow template into entries. Unparseable
// months, amounts and dates degrade to zero values, matching the silent
// tolerance of the raw-row path.
func ReadCashFlow(path string) ([]models.CashFlowEntry, error) {
	rows, err := readTemplate[cashFlowRow](path)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CashFlowEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.CashFlowEntry{
			ID:       strings.TrimSpace(row.ID),
			Month:    parseMonthCell(row.Mes),
			Company:  strings.TrimSpace(row.Empresa),
			Type:     models.CashFlowType(strings.TrimSpace(row.Tipo)),
			Category: strings.TrimSpace(row.Categoria),
			Amount:   normalize.ParseAmount(row.Valor),
			Status:   models.CashFlowStatus(strings.TrimSpace(row.Status)),
		}
		if due, err := time.Parse(dueDateLayout, strings.TrimSpace(row.DataVenc)); err == nil {
			entry.DueDate = due
		}
		entries = append(entries, entry)
	}
	log.WithField("count", len(entries)).Info("Read cash-flow entries")
	return entries, nil
}

// ReadBudget reads the budget template into entries.
func ReadBudget(path string) ([]models.BudgetEntry, error) {
	rows, err := readTemplate[budgetRow](path)
	if err != nil {
		return nil, err
	}

	entries := make([]models.BudgetEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.BudgetEntry{
			Month:    parseMonthCell(row.Mes),
			Company:  strings.TrimSpace(row.Empresa),
			Category: strings.TrimSpace(row.Categoria),
			Budgeted: normalize.ParseAmount(row.Orcado),
			Actual:   normalize.ParseAmount(row.Realizado),
			Owner:    strings.TrimSpace(row.Responsavel),
			Notes:    strings.TrimSpace(row.Observacoes),
		})
	}
	log.WithField("count", len(entries)).Info("Read budget entries")
	return entries, nil
}

// parseMonthCell accepts both numeric months and Portuguese month names.
func parseMonthCell(cell string) int {
	cell = strings.TrimSpace(cell)
	if n, err := strconv.Atoi(cell); err == nil {
		return n
	}
	return normalize.MonthOrdinal(cell)
}
