package calculations

import "math"

// monthsPerYear задает длину цикла досрочных взносов и пересчета платежа
const monthsPerYear = 12

// MonthlyRate переводит годовую ставку (доля, 0.11 = 11%) в месячную
func MonthlyRate(annualRate float64) float64 {
	return annualRate / monthsPerYear
}

// AnnuityPayment рассчитывает аннуитетный платеж, полностью гасящий principal
// за periods месяцев при ставке monthlyRate.
//
//	payment = P * r / (1 - (1 + r)^(-n))
//
// При нулевой ставке формула вырождается, поэтому платеж равен P / n.
func AnnuityPayment(principal, monthlyRate float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(periods)
	}
	return principal * monthlyRate / (1.0 - math.Pow(1.0+monthlyRate, float64(-periods)))
}
