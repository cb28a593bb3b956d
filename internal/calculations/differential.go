package calculations

import (
	"fmt"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// DifferentialSchedule рассчитывает график дифференцированного кредита
func DifferentialSchedule(principal, annualRatePercent float64, months int) (*CalculationResult, error) {
	if err := checkLoanInputs(principal, annualRatePercent, months); err != nil {
		return nil, err
	}

	n := months
	r := MonthlyRate(annualRatePercent)

	principalComponentRaw := principal / float64(n)
	remaining := principal
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0
	schedule := make([]ScheduleEntry, 0, n)

	var firstPayment, lastPayment float64

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := principalComponentRaw
		if m == n {
			principalComponent = remaining
		}
		payment := principalComponent + interest

		interest = utils.Round2(interest)
		principalComponent = utils.Round2(principalComponent)
		payment = utils.Round2(payment)

		remaining = utils.Round2(remaining - principalComponent)
		cumI = utils.Round2(cumI + interest)
		cumP = utils.Round2(cumP + principalComponent)
		totalPaid = utils.Round2(totalPaid + payment)

		if m == 1 {
			firstPayment = payment
		}
		if m == n {
			lastPayment = payment
		}

		if remaining < -0.01 {
			return nil, fmt.Errorf("numeric error: remaining principal went negative at month %d", m)
		}
		if remaining < 0 {
			remaining = 0.0
		}

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             payment,
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
			FirstMonthPayment: firstPayment,
			LastMonthPayment:  lastPayment,
			TotalPaid:         totalPaid,
			TotalInterest:     cumI,
		},
		Schedule: schedule,
	}, nil
}
