package calculations

// LoanParameters описывает входные данные расчета автокредита.
// Суммы выражены в единицах валюты без дробной части (гуарани).
type LoanParameters struct {
	VehiclePrice        float64 `json:"vehicle_price"`
	DownPayment         float64 `json:"down_payment"`
	TermMonths          int     `json:"term_months"`
	AnnualReinforcement float64 `json:"annual_reinforcement"`
	AnnualRate          float64 `json:"annual_rate"`
}

// PrincipalFinanced возвращает сумму к финансированию
func (p LoanParameters) PrincipalFinanced() float64 {
	return p.VehiclePrice - p.DownPayment
}

// PeriodRecord представляет один месяц графика платежей.
//
// OpeningBalance в первом месяце очередного года включает досрочный взнос
// (refuerzo), внесенный в последнем месяце предыдущего года. Проценты
// начисляются на фактический остаток, то есть на ClosingBalance предыдущего месяца.
type PeriodRecord struct {
	Period           int     `json:"period"`
	OpeningBalance   float64 `json:"opening_balance"`
	Interest         float64 `json:"interest"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	Reinforcement    float64 `json:"reinforcement"`
	ClosingBalance   float64 `json:"closing_balance"`
}

// IsReinforcementPeriod сообщает, был ли в этом месяце внесен досрочный взнос
func (r PeriodRecord) IsReinforcementPeriod() bool {
	return r.Reinforcement > 0
}

// ScheduleResult представляет результат расчета графика
type ScheduleResult struct {
	PrincipalFinanced  float64        `json:"principal_financed"`
	MonthlyRate        float64        `json:"monthly_rate"`
	InitialPayment     float64        `json:"initial_payment"`
	FinalPayment       float64        `json:"final_payment"`
	TotalInterest      float64        `json:"total_interest"`
	TotalReinforcement float64        `json:"total_reinforcement"`
	TotalPaid          float64        `json:"total_paid"`
	PayoffPeriod       int            `json:"payoff_period"`
	Schedule           []PeriodRecord `json:"schedule"`
}

// BankQuote представляет итог расчета для одного банка
type BankQuote struct {
	Bank           string  `json:"bank"`
	AnnualRate     float64 `json:"annual_rate"`
	InitialPayment float64 `json:"initial_payment"`
	FinalPayment   float64 `json:"final_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPaid      float64 `json:"total_paid"`
	PayoffPeriod   int     `json:"payoff_period"`
}

// ImpactResult сравнивает график с ежегодными взносами и без них
type ImpactResult struct {
	WithReinforcement    ScheduleResult `json:"with_reinforcement"`
	WithoutReinforcement ScheduleResult `json:"without_reinforcement"`
	InterestSaved        float64        `json:"interest_saved"`
	MonthsSaved          int            `json:"months_saved"`
}
