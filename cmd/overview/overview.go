// Package overview handles the revenue and expense overview command
package overview

import (
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the overview command
var Cmd = &cobra.Command{
	Use:   "overview",
	Short: "Compute the revenue and expense overview",
	Long: `Compute the revenue and expense overview from a financial CSV export:
monthly inflow and outflow series, the cost breakdown, company performance
and the revenue KPIs.`,
	Run: overviewFunc,
}

func overviewFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Overview command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	rows, err := ingest.ReadRawRows(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	session := dashboard.NewOverview(common.NewClassifier())
	session.Load(rows)
	if root.SharedFlags.Company != "" {
		session.SetCompany(root.SharedFlags.Company)
	}
	if len(root.SharedFlags.Months) > 0 {
		session.SetMonths(root.SharedFlags.Months)
	}

	payload := report.OverviewReport{
		GeneratedAt: time.Now(),
		UploadID:    session.UploadID(),
		Company:     session.Filter().Company,
		Months:      session.Filter().Months,
		Series:      session.PeriodSeries(),
		Breakdown:   session.CategoryBreakdown(),
		Performance: session.CompanyPerformance(),
		KPIs:        session.KPIs(),
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Overview computed successfully!")
}
