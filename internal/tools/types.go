package tools

import (
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/banks"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/calculations"
	"github.com/cloud-ru/mcp-vehicle-loan-go/pkg/utils"
)

// ScheduleResponse результат инструмента vehicle_loan_schedule
type ScheduleResponse struct {
	Bank       string                      `json:"bank"`
	AnnualRate float64                     `json:"annual_rate"`
	Parameters calculations.LoanParameters `json:"parameters"`
	Result     calculations.ScheduleResult `json:"result"`
	Summary    ScheduleSummary             `json:"summary"`
}

// ScheduleSummary суммы графика, отформатированные для показа
type ScheduleSummary struct {
	PrincipalFinanced string `json:"principal_financed"`
	MonthlyPayment    string `json:"monthly_payment"`
	FinalPayment      string `json:"final_payment"`
	TotalInterest     string `json:"total_interest"`
	TotalPaid         string `json:"total_paid"`
}

// CompareResponse результат инструмента compare_banks
type CompareResponse struct {
	Quotes   []calculations.BankQuote `json:"quotes"`
	Cheapest string                   `json:"cheapest"`
	Savings  float64                  `json:"savings"`
}

// ImpactResponse результат инструмента reinforcement_impact
type ImpactResponse struct {
	Bank       string                    `json:"bank"`
	AnnualRate float64                   `json:"annual_rate"`
	Impact     calculations.ImpactResult `json:"impact"`
	Summary    ImpactSummary             `json:"summary"`
}

// ImpactSummary суммы процентов, отформатированные для показа
type ImpactSummary struct {
	InterestWith    string `json:"interest_with_reinforcement"`
	InterestWithout string `json:"interest_without_reinforcement"`
	InterestSaved   string `json:"interest_saved"`
}

// BankRatesResponse результат инструмента bank_rates
type BankRatesResponse struct {
	DefaultBank string       `json:"default_bank"`
	Rates       []banks.Rate `json:"rates"`
}

// summarize формирует сводку для показа. Ежемесячный платеж берется
// первым, как его видит клиент при оформлении.
func summarize(result calculations.ScheduleResult) ScheduleSummary {
	return ScheduleSummary{
		PrincipalFinanced: formatAmount(result.PrincipalFinanced),
		MonthlyPayment:    formatAmount(result.InitialPayment),
		FinalPayment:      formatAmount(result.FinalPayment),
		TotalInterest:     formatAmount(result.TotalInterest),
		TotalPaid:         formatAmount(result.TotalPaid),
	}
}

func formatAmount(value float64) string {
	return utils.FormatGs(value)
}
