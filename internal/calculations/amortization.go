package calculations

// Compute строит график погашения автокредита с ежегодными досрочными
// взносами (refuerzo).
//
// Платеж сначала рассчитывается на весь срок. В начале каждого нового года
// (месяцы 13, 25, ...) он пересчитывается по текущему остатку и оставшемуся
// числу месяцев. Взнос вносится в месяцы, кратные 12.
//
// Функция не проверяет входные данные: при сумме к финансированию <= 0 или
// сроке <= 0 возвращается пустой график. Безопасна для конкурентного вызова.
func Compute(params LoanParameters) ScheduleResult {
	principal := params.PrincipalFinanced()
	n := params.TermMonths

	result := ScheduleResult{
		PrincipalFinanced: principal,
		Schedule:          []PeriodRecord{},
	}
	if principal <= 0 || n <= 0 {
		return result
	}

	r := MonthlyRate(params.AnnualRate)
	result.MonthlyRate = r

	payment := AnnuityPayment(principal, r, n)
	result.InitialPayment = payment

	schedule := make([]PeriodRecord, 0, n)
	balance := principal
	opening := principal

	for i := 1; i <= n; i++ {
		if i > 1 && (i-1)%monthsPerYear == 0 {
			remaining := n - (i - 1)
			if remaining > 0 {
				payment = AnnuityPayment(balance, r, remaining)
			} else {
				payment = 0
			}
		}

		interest := balance * r
		principalPortion := payment - interest
		periodPayment := payment

		var reinforcement float64
		if i%monthsPerYear == 0 {
			reinforcement = params.AnnualReinforcement
		}

		adjusted := false
		if principalPortion+reinforcement > balance {
			// Сначала урезаем взнос, плановое погашение имеет приоритет
			reinforcement -= principalPortion + reinforcement - balance
			if reinforcement < 0 {
				principalPortion += reinforcement
				reinforcement = 0
			}
			adjusted = true
		}
		if i == n && principalPortion+reinforcement < balance {
			principalPortion = balance - reinforcement
			adjusted = true
		}
		if adjusted {
			periodPayment = interest + principalPortion + reinforcement
		}

		closing := balance - (principalPortion + reinforcement)
		if adjusted || closing < 0 {
			closing = 0
		}

		schedule = append(schedule, PeriodRecord{
			Period:           i,
			OpeningBalance:   opening,
			Interest:         interest,
			Payment:          periodPayment,
			PrincipalPortion: principalPortion,
			Reinforcement:    reinforcement,
			ClosingBalance:   closing,
		})

		result.TotalInterest += interest
		result.TotalReinforcement += reinforcement
		if closing == 0 && result.PayoffPeriod == 0 {
			result.PayoffPeriod = i
		}

		balance = closing
		opening = closing + reinforcement
	}

	result.FinalPayment = schedule[len(schedule)-1].Payment
	result.TotalPaid = principal + result.TotalInterest
	result.Schedule = schedule

	return result
}
