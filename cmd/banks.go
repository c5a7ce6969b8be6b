package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the configured banks and their annual rates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := current.call(cmd.Context(), tools.ToolBankRates, nil)
		if err != nil {
			return err
		}
		resp, ok := result.(*tools.BankRatesResponse)
		if !ok {
			return fmt.Errorf("unexpected result type %T", result)
		}
		return renderRates(cmd.OutOrStdout(), resp)
	},
}

func init() {
	rootCmd.AddCommand(banksCmd)
}
