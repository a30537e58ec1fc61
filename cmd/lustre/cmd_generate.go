package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lustre/internal/blocks"
	"lustre/internal/compare"
	"lustre/internal/llm"
	"lustre/internal/page"
	"lustre/internal/workflow"
)

var (
	flagInput  string
	flagOutput string
	flagNoLLM  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline and write the three page artifacts",
	Long: `Reads one product record, runs the five-step workflow, and writes
faq.json, product_page.json, and comparison_page.json to the output
directory. Each artifact is written only if its producing step succeeded.

Without an API key (or with --no-llm) every step runs on its
deterministic fallback and the run still completes.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagInput, "file", "f", "", "product record JSON file (required)")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&flagNoLLM, "no-llm", false, "skip all LLM calls, use deterministic fallbacks only")
	generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(flagInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	engine := buildEngine(cmd, flagNoLLM)
	state := engine.Run(cmd.Context(), raw)

	outDir := flagOutput
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	writer, err := page.NewWriter(outDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(state.FAQ, state.Page, state.Comparison); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	report := workflow.Validate(state)
	printReport(cmd, report)
	if !report.Complete {
		return fmt.Errorf("run incomplete: missing %v", report.Missing)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Artifacts written to %s\n", writer.Dir())
	return nil
}

// buildEngine wires the completer, block library, and scorer from config.
func buildEngine(cmd *cobra.Command, noLLM bool) *workflow.Engine {
	var completer llm.Completer = llm.Disabled{}
	blockCfg := cfg.BlockConfig()

	if noLLM || cfg.APIKey == "" {
		blockCfg.UseLLM = false
	} else if blockCfg.UseLLM {
		gemini, err := llm.NewGemini(cmd.Context(), cfg.APIKey, cfg.Model)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "LLM client unavailable (%v), continuing with fallbacks\n", err)
			blockCfg.UseLLM = false
		} else {
			completer = gemini
		}
	}

	lib := blocks.NewLibrary(completer, compare.NewScorer(cfg.ScorerThresholds()), blockCfg)
	return workflow.New(completer, lib, workflow.Options{
		QuestionCount: cfg.QuestionCount,
		MaxFAQ:        cfg.MaxFAQ,
	})
}

func printReport(cmd *cobra.Command, report workflow.Report) {
	out := cmd.OutOrStdout()
	for _, entry := range report.Log {
		fmt.Fprintln(out, entry)
	}
	for _, msg := range report.Errors {
		fmt.Fprintf(out, "ERROR: %s\n", msg)
	}
	if len(report.Missing) > 0 {
		fmt.Fprintf(out, "Missing fields: %v\n", report.Missing)
	}
}
