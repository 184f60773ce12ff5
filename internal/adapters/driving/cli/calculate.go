package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate SAMPLE_ID",
	Short: "Estimate electricity output for a sample",
	Long: `Ask the analysis service for the estimated daily and yearly electricity
output of one sample. Sample IDs come from a previous analysis result.

Exits with an error when the sample is unknown or the service fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	if calculationService == nil {
		return fmt.Errorf("calculate: %w", errServicesNotConfigured)
	}

	result := calculationService.Calculate(cmd.Context(), args[0])
	if !result.Found() {
		if result.Err != nil {
			return fmt.Errorf("%s: %w", result.Message(), result.Err)
		}
		return errors.New(result.Message())
	}

	cmd.Println(result.Message())
	return nil
}
