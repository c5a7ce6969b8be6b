package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the same loan across all configured banks",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addLoanFlags(compareCmd, false)
}

func runCompare(cmd *cobra.Command, args []string) error {
	result, err := current.call(cmd.Context(), tools.ToolCompareBanks, loanParamsFromFlags(cmd))
	if err != nil {
		return err
	}
	resp, ok := result.(*tools.CompareResponse)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	if wantJSON(cmd) {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	return renderQuotes(cmd.OutOrStdout(), resp)
}
