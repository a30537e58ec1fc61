package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lustre/internal/compare"
	"lustre/internal/product"
)

var (
	flagProductA string
	flagProductB string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score two product records across the six comparison dimensions",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&flagProductA, "product-a", "a", "", "first product record JSON file (required)")
	compareCmd.Flags().StringVarP(&flagProductB, "product-b", "b", "", "second product record JSON file (required)")
	compareCmd.MarkFlagRequired("product-a")
	compareCmd.MarkFlagRequired("product-b")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	a, err := loadProduct(flagProductA)
	if err != nil {
		return fmt.Errorf("product A: %w", err)
	}
	b, err := loadProduct(flagProductB)
	if err != nil {
		return fmt.Errorf("product B: %w", err)
	}

	scorer := compare.NewScorer(cfg.ScorerThresholds())
	result := scorer.Compare(a, b)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func loadProduct(path string) (*product.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return product.Parse(raw)
}
