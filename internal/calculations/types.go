package calculations

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int     `json:"month"`
	DueDate             string  `json:"due_date,omitempty"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            int     `json:"months"`
	MonthlyPayment    float64 `json:"monthly_payment,omitempty"`
	FirstMonthPayment float64 `json:"first_month_payment,omitempty"`
	LastMonthPayment  float64 `json:"last_month_payment,omitempty"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// CalculationResult представляет результат расчета графика
type CalculationResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// LoanTotals ключевые показатели одной схемы погашения
type LoanTotals struct {
	TotalPaid          float64 `json:"total_paid"`
	TotalInterest      float64 `json:"total_interest"`
	MonthlyPayment     float64 `json:"monthly_payment,omitempty"`
	FirstMonthPayment  float64 `json:"first_month_payment,omitempty"`
	LastMonthPayment   float64 `json:"last_month_payment,omitempty"`
	OverpaymentPercent float64 `json:"overpayment_percent"`
}

// Difference разница между схемами
type Difference struct {
	TotalPaidDiff float64 `json:"total_paid_diff"`
	InterestDiff  float64 `json:"interest_diff"`
	CheaperType   string  `json:"cheaper_type"`
	Savings       float64 `json:"savings"`
}

// Comparison сводное сравнение аннуитетной и дифференцированной схем
type Comparison struct {
	Principal         float64    `json:"principal"`
	AnnualRatePercent float64    `json:"annual_rate_percent"`
	Months            int        `json:"months"`
	Annuity           LoanTotals `json:"annuity"`
	Differential      LoanTotals `json:"differential"`
	Difference        Difference `json:"difference"`
	Recommendation    string     `json:"recommendation"`
}

// ComparisonResult представляет результат сравнения кредитов
type ComparisonResult struct {
	Comparison   Comparison        `json:"comparison"`
	Annuity      CalculationResult `json:"annuity"`
	Differential CalculationResult `json:"differential"`
}
