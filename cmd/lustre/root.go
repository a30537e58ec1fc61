// lustre turns one product record into three content artifacts: an FAQ
// page, a product description page, and a comparison page.
//
// Usage:
//
//	lustre generate -f <product.json> [-o <dir>] [--no-llm]
//	lustre validate -f <product.json>
//	lustre compare -a <product.json> -b <product.json>
//	lustre serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lustre/internal/config"
	"lustre/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lustre",
	Short: "Content generation pipeline for skincare product records",
	Long: "Lustre runs a five-step workflow over a single product record,\n" +
		"producing FAQ, product page, and comparison JSON artifacts with\n" +
		"LLM-assisted copy and deterministic fallbacks.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		if flagLogFormat != "" {
			cfg.LogFormat = flagLogFormat
		}
		logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "lustre.yaml", "config file path (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
