// Package balancete handles the trial-balance command
package balancete

import (
	"strings"
	"time"

	"rmoreira/findash/cmd/common"
	"rmoreira/findash/cmd/root"
	"rmoreira/findash/internal/dashboard"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/models"
	"rmoreira/findash/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the balancete command
var Cmd = &cobra.Command{
	Use:   "balancete",
	Short: "Compute trial-balance totals, ratios and account rankings",
	Long: `Compute the trial-balance view from a balancete CSV export: group and
subgroup totals, the balance check, financial ratios, the top-N ranking of
accounts inside a group and the cash concentration.`,
	Run: balanceteFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.Group, "group", "Ativo", "Account group to rank: Ativo, Passivo or Patrimônio Líquido")
	Cmd.Flags().IntVar(&root.TopN, "top", 10, "Number of accounts to rank: 5, 10 or 15")
}

func parseGroup(name string) models.BalanceGroup {
	switch strings.ToUpper(name) {
	case "PASSIVO":
		return models.GroupPassivo
	case "PATRIMÔNIO LÍQUIDO", "PATRIMONIO LIQUIDO", "PL":
		return models.GroupPL
	default:
		return models.GroupAtivo
	}
}

func balanceteFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Balancete command called")
	root.Log.Infof("Input CSV file: %s", root.SharedFlags.Input)

	rows, err := ingest.ReadRawRows(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	session := dashboard.NewBalancete(common.NewClassifier())
	session.Load(rows)
	if root.SharedFlags.Company != "" {
		session.SetCompany(root.SharedFlags.Company)
	}

	cash, share := session.CashConcentration()
	ranking := session.Ranking(parseGroup(root.Group), root.TopN)
	payload := report.BalanceReport{
		GeneratedAt: time.Now(),
		Company:     session.Company(),
		Totals:      session.Totals(),
		Ratios:      session.Ratios(),
		Ranking:     ranking,
		Cash: []models.RankedAccount{
			{Name: "Disponibilidades", Value: cash},
		},
		CashShareOfCurrent: share,
	}
	if err := common.EmitReport(payload); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Trial balance computed successfully!")
}
