package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute the amortization schedule for a vehicle loan",
	Example: `  # Default loan at the default bank
  loancalc schedule

  # 80M vehicle, 20M down, 48 months at BancoITAU, with the full table
  loancalc schedule --price 80000000 --down 20000000 --term 48 --bank BancoITAU --table`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	addLoanFlags(scheduleCmd, true)
	scheduleCmd.Flags().Bool("table", false, "Print the month-by-month amortization table")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	result, err := current.call(cmd.Context(), tools.ToolVehicleLoanSchedule, loanParamsFromFlags(cmd))
	if err != nil {
		return err
	}
	resp, ok := result.(*tools.ScheduleResponse)
	if !ok {
		return fmt.Errorf("unexpected result type %T", result)
	}

	current.log.Debug().
		Str("bank", resp.Bank).
		Int("periods", len(resp.Result.Schedule)).
		Msg("schedule computed")

	out := cmd.OutOrStdout()
	if wantJSON(cmd) {
		return printJSON(out, resp)
	}

	renderSummary(out, resp)
	if table, _ := cmd.Flags().GetBool("table"); table {
		fmt.Fprintln(out)
		return renderSchedule(out, resp.Result.Schedule)
	}
	return nil
}
