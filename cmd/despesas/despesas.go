// Package despesas handles the expense analysis command
package despesas

import (
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the despesas command
var Cmd = &cobra.Command{
	Use:   "despesas",
	Short: "Compute the expense analysis",
	Long: `Compute the expense analysis from a financial CSV export: the monthly
expense series, the descending category breakdown, the evolution of the top
categories and the expense KPIs.`,
	Run: despesasFunc,
}

var categories []string

func init() {
	Cmd.Flags().StringSliceVar(&categories, "categories", nil, "Filter by expense categories (default: all)")
}

func despesasFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Despesas command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	rows, err := ingest.ReadRawRows(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	session := dashboard.NewDespesas(common.NewClassifier())
	session.Load(rows)
	if root.SharedFlags.Company != "" {
		session.SetCompany(root.SharedFlags.Company)
	}
	if len(root.SharedFlags.Months) > 0 {
		session.SetMonths(root.SharedFlags.Months)
	}
	if len(categories) > 0 {
		session.SetCategories(categories)
	}

	payload := report.ExpenseReport{
		GeneratedAt: time.Now(),
		UploadID:    session.UploadID(),
		Company:     session.Filter().Company,
		Months:      session.Filter().Months,
		Series:      session.Series(),
		Breakdown:   session.Breakdown(),
		Evolution:   session.Evolution(),
		KPIs:        session.KPIs(),
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Expense analysis computed successfully!")
}
