package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lustre/internal/product"
)

var flagValidateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a product record and list every offending field",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&flagValidateInput, "file", "f", "", "product record JSON file (required)")
	validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(flagValidateInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p, err := product.Parse(raw)
	if err != nil {
		var ve *product.ValidationError
		if errors.As(err, &ve) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Invalid product record (%d field errors):\n", len(ve.Fields))
			for _, f := range ve.Fields {
				fmt.Fprintf(out, "  %s: %s\n", f.Field, f.Reason)
			}
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Valid product record: %s (₹%v)\n", p.Name, p.Price)
	return nil
}
