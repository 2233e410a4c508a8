// Package fluxo handles the cash-flow command
package fluxo

import (
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/aggregate"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the fluxo command
var Cmd = &cobra.Command{
	Use:   "fluxo",
	Short: "Compute the cash-flow summary",
	Long: `Compute the cash-flow summary from a contas a pagar/receber CSV
template: current balance, projected 30-day flow, days of cash on hand and
the count of overdue bills.`,
	Run: fluxoFunc,
}

func init() {
	Cmd.Flags().IntVar(&root.MonthFrom, "from", 0, "First month ordinal of the period (1-12)")
	Cmd.Flags().IntVar(&root.MonthTo, "to", 0, "Last month ordinal of the period (1-12)")
}

func fluxoFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Fluxo command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	entries, err := ingest.ReadCashFlow(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	session := dashboard.NewFluxo()
	session.Load(entries)
	scoped := session.Entries()
	if root.SharedFlags.Company != "" {
		scoped = session.ByCompany(root.SharedFlags.Company)
	}
	if root.MonthFrom > 0 || root.MonthTo > 0 {
		to := root.MonthTo
		if to == 0 {
			to = 12
		}
		scoped = aggregate.FilterCashFlowByPeriod(scoped, root.MonthFrom, to)
	}

	payload := report.CashFlowReport{
		GeneratedAt: time.Now(),
		Company:     root.SharedFlags.Company,
		Summary:     aggregate.CashFlow(scoped, time.Now()),
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Cash flow computed successfully!")
}
