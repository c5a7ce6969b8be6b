package calculations

import "sort"

// CompareBanks рассчитывает график для каждой ставки из rates и возвращает
// итоги, отсортированные по сумме процентов (при равенстве по имени банка).
// Поле AnnualRate в params игнорируется.
func CompareBanks(params LoanParameters, rates map[string]float64) []BankQuote {
	quotes := make([]BankQuote, 0, len(rates))

	for bank, rate := range rates {
		p := params
		p.AnnualRate = rate
		result := Compute(p)

		quotes = append(quotes, BankQuote{
			Bank:           bank,
			AnnualRate:     rate,
			InitialPayment: result.InitialPayment,
			FinalPayment:   result.FinalPayment,
			TotalInterest:  result.TotalInterest,
			TotalPaid:      result.TotalPaid,
			PayoffPeriod:   result.PayoffPeriod,
		})
	}

	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].TotalInterest != quotes[j].TotalInterest {
			return quotes[i].TotalInterest < quotes[j].TotalInterest
		}
		return quotes[i].Bank < quotes[j].Bank
	})

	return quotes
}

// ReinforcementImpact сравнивает график с ежегодными взносами и тот же
// кредит без них
func ReinforcementImpact(params LoanParameters) ImpactResult {
	with := Compute(params)

	without := params
	without.AnnualReinforcement = 0
	base := Compute(without)

	return ImpactResult{
		WithReinforcement:    with,
		WithoutReinforcement: base,
		InterestSaved:        base.TotalInterest - with.TotalInterest,
		MonthsSaved:          base.PayoffPeriod - with.PayoffPeriod,
	}
}
