// Package report renders dashboard results to JSON or CSV so they can be
// consumed outside the terminal, for example by spreadsheets or a web
// front end.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rmoreira/findash/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// OverviewReport bundles everything the overview dashboard computes for a
// single filter state.
type OverviewReport struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	UploadID    string                      `json:"upload_id,omitempty"`
	Company     string                      `json:"company"`
	Months      []string                    `json:"months"`
	Series      []models.PeriodPoint        `json:"series"`
	Breakdown   []models.CategorySlice      `json:"breakdown"`
	Performance []models.CompanyPerformance `json:"performance"`
	KPIs        models.KPIBundle            `json:"kpis"`
}

// ExpenseReport bundles the expense dashboard results.
type ExpenseReport struct {
	GeneratedAt time.Time               `json:"generated_at"`
	UploadID    string                  `json:"upload_id,omitempty"`
	Company     string                  `json:"company"`
	Months      []string                `json:"months"`
	Series      []models.ExpensePoint   `json:"series"`
	Breakdown   []models.CategorySlice  `json:"breakdown"`
	Evolution   []models.EvolutionPoint `json:"evolution"`
	KPIs        models.ExpenseKPIs      `json:"kpis"`
}

// BalanceReport bundles the trial-balance dashboard results.
type BalanceReport struct {
	GeneratedAt        time.Time              `json:"generated_at"`
	Company            string                 `json:"company"`
	Totals             models.BalanceTotals   `json:"totals"`
	Ratios             models.BalanceRatios   `json:"ratios"`
	Ranking            models.AccountRanking  `json:"ranking"`
	Cash               []models.RankedAccount `json:"cash,omitempty"`
	CashShareOfCurrent decimal.Decimal        `json:"cash_share_of_current"`
}

// CashFlowReport bundles the cash-flow dashboard results.
type CashFlowReport struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Company     string                 `json:"company"`
	Summary     models.CashFlowSummary `json:"summary"`
}

// BudgetReport bundles the budget dashboard results.
type BudgetReport struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Company     string                   `json:"company"`
	Summary     models.BudgetSummary     `json:"summary"`
	Deviations  []models.BudgetDeviation `json:"deviations"`
}

// DREReport bundles the income-statement dashboard results.
type DREReport struct {
	GeneratedAt  time.Time                   `json:"generated_at"`
	Company      string                      `json:"company"`
	Year         int                         `json:"year"`
	Regime       models.DRERegime            `json:"regime"`
	Monthly      []models.DREMonthlyLine     `json:"monthly,omitempty"`
	Accumulated  []models.DREAccumulatedLine `json:"accumulated,omitempty"`
	PeriodTotals []models.DREPeriodTotal     `json:"period_totals,omitempty"`
}

// Generator renders reports in the configured format (json or csv).
type Generator struct {
	format string
}

// NewGenerator creates a Generator for the given format.
func NewGenerator(format string) *Generator {
	return &Generator{format: format}
}

// Render serializes the report. JSON handles any report type; CSV only
// accepts slice payloads because a CSV file has a single row shape.
func (g *Generator) Render(report any) ([]byte, error) {
	switch g.format {
	case "json":
		return g.renderJSON(report)
	case "csv":
		return g.renderCSV(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", g.format)
	}
}

// WriteFile renders the report and writes it to path, creating parent
// directories as needed.
func (g *Generator) WriteFile(report any, path string) error {
	data, err := g.Render(report)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		log.WithError(err).Error("Failed to create report directory")
		return fmt.Errorf("error creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.WithError(err).Error("Failed to write report file")
		return fmt.Errorf("error writing report file: %w", err)
	}
	log.WithFields(logrus.Fields{
		"file":   path,
		"format": g.format,
	}).Info("Report written")
	return nil
}

func (g *Generator) renderJSON(report any) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) renderCSV(report any) ([]byte, error) {
	switch rows := report.(type) {
	case []models.FinancialRecord:
		return marshalCSV(rows)
	case []models.ExpenseRecord:
		return marshalCSV(rows)
	case []models.CategorySlice:
		return marshalCSV(rows)
	case []models.PeriodPoint:
		return marshalCSV(rows)
	case []models.RankedAccount:
		return marshalCSV(rows)
	default:
		return nil, fmt.Errorf("report type %T cannot be rendered as CSV, use json", report)
	}
}

func marshalCSV[T any](rows []T) ([]byte, error) {
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		log.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return []byte(out), nil
}

// WriteRecordsToCSV writes classified records to a CSV file. Dashboards use
// it to export the normalized dataset after classification.
func WriteRecordsToCSV(records []models.FinancialRecord, path string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(records),
	}).Info("Writing records to CSV file")

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
