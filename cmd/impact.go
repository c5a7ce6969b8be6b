package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Show how much interest the annual reinforcement saves",
	Args:  cobra.NoArgs,
	RunE:  runImpact,
}

func init() {
	rootCmd.AddCommand(impactCmd)
	addLoanFlags(impactCmd, true)
}

func runImpact(cmd *cobra.Command, args []string) error {
	result, err := current.call(cmd.Context(), tools.ToolReinforcementImpact, loanParamsFromFlags(cmd))
	if err != nil {
		return err
	}
	resp, ok := result.(*tools.ImpactResponse)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	renderImpact(cmd.OutOrStdout(), resp)
	return nil
}
