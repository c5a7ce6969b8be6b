package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/calculations"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
	"github.com/cloud-ru/mcp-vehicle-loan-go/pkg/utils"
)

func renderSummary(w io.Writer, resp *tools.ScheduleResponse) {
	fmt.Fprintf(w, "Banco:                %s (%.1f%%)\n", resp.Bank, resp.AnnualRate*100)
	fmt.Fprintf(w, "Monto a financiar:    %s\n", resp.Summary.PrincipalFinanced)
	fmt.Fprintf(w, "Cuota mensual:        %s\n", resp.Summary.MonthlyPayment)
	fmt.Fprintf(w, "Cuota final:          %s\n", resp.Summary.FinalPayment)
	fmt.Fprintf(w, "Interés total pagado: %s\n", resp.Summary.TotalInterest)
	fmt.Fprintf(w, "Total pagado:         %s\n", resp.Summary.TotalPaid)
	if resp.Result.PayoffPeriod > 0 && resp.Result.PayoffPeriod < resp.Parameters.TermMonths {
		fmt.Fprintf(w, "Cancelado en el mes:  %d\n", resp.Result.PayoffPeriod)
	}
}

// renderSchedule печатает таблицу амортизации, месяцы с refuerzo помечены *
func renderSchedule(w io.Writer, schedule []calculations.PeriodRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Mes\tSaldo inicial\tCuota\tInterés\tCapital\tRefuerzo\tSaldo final\t")
	for _, rec := range schedule {
		reinforcement := "-"
		marker := ""
		if rec.IsReinforcementPeriod() {
			reinforcement = utils.FormatGs(rec.Reinforcement)
			marker = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.Period, marker,
			utils.FormatGs(rec.OpeningBalance),
			utils.FormatGs(rec.Payment),
			utils.FormatGs(rec.Interest),
			utils.FormatGs(rec.PrincipalPortion),
			reinforcement,
			utils.FormatGs(rec.ClosingBalance),
		)
	}
	return tw.Flush()
}

func renderQuotes(w io.Writer, resp *tools.CompareResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Banco\tTasa\tCuota inicial\tCuota final\tInterés total\tTotal pagado")
	for _, q := range resp.Quotes {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%s\t%s\t%s\t%s\n",
			q.Bank, q.AnnualRate*100,
			utils.FormatGs(q.InitialPayment),
			utils.FormatGs(q.FinalPayment),
			utils.FormatGs(q.TotalInterest),
			utils.FormatGs(q.TotalPaid),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if resp.Cheapest != "" {
		fmt.Fprintf(w, "\nMás conveniente: %s (ahorro hasta %s)\n", resp.Cheapest, utils.FormatGs(resp.Savings))
	}
	return nil
}

func renderImpact(w io.Writer, resp *tools.ImpactResponse) {
	fmt.Fprintf(w, "Banco:                      %s (%.1f%%)\n", resp.Bank, resp.AnnualRate*100)
	fmt.Fprintf(w, "Interés con refuerzos:      %s\n", resp.Summary.InterestWith)
	fmt.Fprintf(w, "Interés sin refuerzos:      %s\n", resp.Summary.InterestWithout)
	fmt.Fprintf(w, "Ahorro en intereses:        %s\n", resp.Summary.InterestSaved)
	fmt.Fprintf(w, "Meses ahorrados:            %d\n", resp.Impact.MonthsSaved)
}

func renderRates(w io.Writer, resp *tools.BankRatesResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Banco\tTasa anual\t")
	for _, r := range resp.Rates {
		marker := ""
		if r.Bank == resp.DefaultBank {
			marker = " (default)"
		}
		fmt.Fprintf(tw, "%s%s\t%.1f%%\t\n", r.Bank, marker, r.AnnualRate*100)
	}
	return tw.Flush()
}
