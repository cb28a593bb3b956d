package calculations

import (
	"fmt"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// AnnuitySchedule рассчитывает график аннуитетного кредита.
// Последний платеж поглощает остаток от округлений, остаток долга в конце равен 0.
func AnnuitySchedule(principal, annualRatePercent float64, months int) (*CalculationResult, error) {
	if err := checkLoanInputs(principal, annualRatePercent, months); err != nil {
		return nil, err
	}

	n := months
	r := MonthlyRate(annualRatePercent)
	monthlyPayment := monthlyInstallment(principal, r, n)

	schedule := make([]ScheduleEntry, 0, n)
	remaining := principal
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		monthly := monthlyPayment

		if m == n {
			principalComponent = remaining
			monthly = principalComponent + interest
		}

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		monthly = utils.Round2(monthly)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + monthly)

		if remaining < -0.01 {
			return nil, fmt.Errorf("numeric error: remaining principal went negative at month %d", m)
		}
		if remaining < 0 {
			remaining = 0.0
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             monthly,
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  remaining,
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	return &CalculationResult{
		Summary: LoanSummary{
			Principal:         utils.Round2(principal),
			AnnualRatePercent: utils.Round2(annualRatePercent),
			Months:            n,
			MonthlyPayment:    utils.Round2(monthlyPayment),
			TotalPaid:         totalPaid,
			TotalInterest:     cumI,
		},
		Schedule: schedule,
	}, nil
}
