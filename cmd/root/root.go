// Package root contains the root command for the application
package root

import (
	"os"

	"rmoreira/findash/internal/classify"
	"rmoreira/findash/internal/config"
	"rmoreira/findash/internal/ingest"
	"rmoreira/findash/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Format  string
	Company string
	Months  []string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded configuration, populated by PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "findash",
		Short: "A CLI tool to aggregate financial spreadsheets into dashboard indicators.",
		Long: `findash reads financial CSV exports (revenue and expense ledgers,
trial balances, cash-flow and budget templates), classifies every row into
category tags and computes the aggregates each dashboard displays.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to findash!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Falling back to default configuration")
			} else {
				Cfg = cfg
			}

			// Set the configured logger for all packages
			classify.SetLogger(Log)
			ingest.SetLogger(Log)
			report.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if Cfg != nil && Cfg.CSV.Delimiter != "" {
				ingest.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				ingest.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific balancete command flags
	Group string
	TopN  int

	// Specific orcamento/fluxo command flags
	MonthFrom int
	MonthTo   int
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output report file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json or csv (default from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Company, "company", "c", "", "Filter by company (default: all)")
	Cmd.PersistentFlags().StringSliceVarP(&SharedFlags.Months, "months", "m", nil, "Filter by month names (default: all)")
}

// ReportFormat resolves the report format from the flag, falling back to the
// configured default.
func ReportFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if Cfg != nil && Cfg.Report.Format != "" {
		return Cfg.Report.Format
	}
	return "json"
}
