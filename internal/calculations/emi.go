package calculations

import (
	"math"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// EMIResult содержит ежемесячный платеж и производные итоги.
// Итоги выводятся из неокругленного платежа, округление только на границе результата.
type EMIResult struct {
	Principal           float64 `json:"principal"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	TenureMonths        int     `json:"tenure_months"`
	MonthlyInstallment  float64 `json:"monthly_installment"`
	TotalPayment        float64 `json:"total_payment"`
	TotalInterest       float64 `json:"total_interest"`
	RoundedTotalPayment float64 `json:"rounded_total_payment"`
}

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

func checkLoanInputs(principal, annualRatePercent float64, months int) error {
	if !utils.IsFinite(principal) {
		return invalid("principal", ViolationNotFinite, principal)
	}
	if !utils.IsFinite(annualRatePercent) {
		return invalid("annual_rate_percent", ViolationNotFinite, annualRatePercent)
	}
	if principal <= 0 {
		return invalid("principal", ViolationNonPositivePrincipal, principal)
	}
	if months <= 0 {
		return invalid("tenure_months", ViolationNonPositiveTenure, months)
	}
	if annualRatePercent < 0 {
		return invalid("annual_rate_percent", ViolationNegativeRate, annualRatePercent)
	}
	return nil
}

// monthlyInstallment считает платеж без проверки входных данных
func monthlyInstallment(principal, r float64, n int) float64 {
	if r == 0.0 {
		return principal / float64(n)
	}
	factor := math.Pow(1.0+r, float64(n))
	if factor == 1.0 {
		// ставка слишком мала для float64
		return principal / float64(n)
	}
	return principal * r * factor / (factor - 1.0)
}

// MonthlyInstallment возвращает аннуитетный платеж без округления
func MonthlyInstallment(principal, annualRatePercent float64, months int) (float64, error) {
	if err := checkLoanInputs(principal, annualRatePercent, months); err != nil {
		return 0, err
	}
	return monthlyInstallment(principal, MonthlyRate(annualRatePercent), months), nil
}

// ComputeEMI рассчитывает ежемесячный платеж, общую сумму выплат и переплату
func ComputeEMI(principal, annualRatePercent float64, months int) (*EMIResult, error) {
	emi, err := MonthlyInstallment(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	var totalPayment, totalInterest float64
	if annualRatePercent == 0 {
		totalPayment = principal
		totalInterest = 0
	} else {
		totalPayment = emi * float64(months)
		totalInterest = totalPayment - principal
	}

	return &EMIResult{
		Principal:           utils.Round2(principal),
		AnnualRatePercent:   annualRatePercent,
		TenureMonths:        months,
		MonthlyInstallment:  utils.Round2(emi),
		TotalPayment:        utils.Round2(totalPayment),
		TotalInterest:       utils.Round2(totalInterest),
		RoundedTotalPayment: utils.Round2(utils.Round2(emi) * float64(months)),
	}, nil
}
