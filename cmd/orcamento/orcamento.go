// Package orcamento handles the budget command
package orcamento

import (
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the orcamento command
var Cmd = &cobra.Command{
	Use:   "orcamento",
	Short: "Compute budgeted versus actual figures",
	Long: `Compute the budget view from an orçamento CSV template: total
budgeted and actual amounts, the overall variance and the per-category
deviations.`,
	Run: orcamentoFunc,
}

func orcamentoFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Orcamento command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	entries, err := ingest.ReadBudget(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	if root.SharedFlags.Company != "" {
		scoped := entries[:0:0]
		for _, e := range entries {
			if e.Company == root.SharedFlags.Company {
				scoped = append(scoped, e)
			}
		}
		entries = scoped
	}

	session := dashboard.NewOrcamento()
	session.Load(entries)

	payload := report.BudgetReport{
		GeneratedAt: time.Now(),
		Company:     root.SharedFlags.Company,
		Summary:     session.Summary(),
		Deviations:  session.Deviations(),
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Budget computed successfully!")
}
