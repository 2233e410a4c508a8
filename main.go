package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rmoreira/findash/cmd/balancete"
	"rmoreira/findash/cmd/despesas"
	"rmoreira/findash/cmd/dre"
	"rmoreira/findash/cmd/fluxo"
	"rmoreira/findash/cmd/orcamento"
	"rmoreira/findash/cmd/overview"
	"rmoreira/findash/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// Configure the global log level before any logger is created
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(overview.Cmd)
	root.Cmd.AddCommand(despesas.Cmd)
	root.Cmd.AddCommand(balancete.Cmd)
	root.Cmd.AddCommand(fluxo.Cmd)
	root.Cmd.AddCommand(orcamento.Cmd)
	root.Cmd.AddCommand(dre.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global log level for all logrus instances
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
