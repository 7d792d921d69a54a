// Package main provides the CLI entry point for sitegen.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/purh/sitegen/pkg/sitegen/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Build a static publishing site from an editorial workbook",
		Long: `sitegen turns the editorial workbook of a publishing house into a
static website, a JSON catalogue and an ONIX 3.0 feed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", getEnv("SITEGEN_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", getEnv("SITEGEN_LOG_FORMAT", "text"), "Log format: text, json")

	rootCmd.AddCommand(newBuildCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
