// Package dre handles the income-statement command
package dre

import (
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

var (
	accumulatedFile string
	regime          string
	monthFrom       int
	monthTo         int
)

// Cmd represents the dre command
var Cmd = &cobra.Command{
	Use:   "dre",
	Short: "Render the income statement (DRE) by regime and period",
	Long: `Render the income statement from the DRE CSV templates: the monthly
projected-versus-real view and the accumulated month-by-month view, scoped to
the caixa or competência regime and summed over a selectable month window.`,
	Run: dreFunc,
}

func init() {
	Cmd.Flags().StringVar(&accumulatedFile, "acumulado", "", "Accumulated DRE CSV template (optional)")
	Cmd.Flags().StringVar(&regime, "regime", "caixa", "Regime to view: caixa, competencia or ambos")
	Cmd.Flags().IntVar(&monthFrom, "from", 1, "First month of the accumulated window (1-12)")
	Cmd.Flags().IntVar(&monthTo, "to", 12, "Last month of the accumulated window (1-12)")
}

func dreFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("DRE command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	monthly, err := ingest.ReadDREMonthly(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}
	var accumulated []models.DREAccumulatedLine
	if accumulatedFile != "" {
		accumulated, err = ingest.ReadDREAccumulated(accumulatedFile)
		if err != nil {
			root.Log.Fatalf("Error reading accumulated file: %v", err)
		}
	}

	session := dashboard.NewDre()
	session.Load(monthly, accumulated)
	session.SetRegime(classify.ParseDRERegime(regime))
	session.SetPeriod(monthFrom, monthTo)

	payload := report.DREReport{
		GeneratedAt:  time.Now(),
		Company:      session.Company(),
		Year:         session.Year(),
		Regime:       session.Regime(),
		Monthly:      session.Monthly(),
		Accumulated:  session.Accumulated(),
		PeriodTotals: session.PeriodTotals(),
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Income statement rendered successfully!")
}
