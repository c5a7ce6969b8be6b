package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// Значения формы калькулятора по умолчанию
const (
	defaultVehiclePrice  = 65_000_000
	defaultDownPayment   = 15_000_000
	defaultTermMonths    = 60
	defaultReinforcement = 10_000_000
)

func addLoanFlags(cmd *cobra.Command, withBank bool) {
	cmd.Flags().Float64("price", defaultVehiclePrice, "Vehicle price (Gs.)")
	cmd.Flags().Float64("down", defaultDownPayment, "Down payment (Gs.)")
	cmd.Flags().Int("term", defaultTermMonths, "Loan term in months")
	cmd.Flags().Float64("reinforcement", defaultReinforcement, "Annual reinforcement payment (Gs.)")
	cmd.Flags().Bool("json", false, "Print the raw JSON result")
	if withBank {
		cmd.Flags().String("bank", "", "Bank identifier (default from DEFAULT_BANK)")
	}
}

func loanParamsFromFlags(cmd *cobra.Command) map[string]interface{} {
	price, _ := cmd.Flags().GetFloat64("price")
	down, _ := cmd.Flags().GetFloat64("down")
	term, _ := cmd.Flags().GetInt("term")
	reinforcement, _ := cmd.Flags().GetFloat64("reinforcement")

	params := map[string]interface{}{
		"vehicle_price":        price,
		"down_payment":         down,
		"term_months":          float64(term),
		"annual_reinforcement": reinforcement,
	}
	if cmd.Flags().Lookup("bank") != nil {
		if bank, _ := cmd.Flags().GetString("bank"); bank != "" {
			params["bank"] = bank
		}
	}
	return params
}

func wantJSON(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
