package calculations

import (
	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

const (
	CheaperAnnuity      = "annuity"
	CheaperDifferential = "differential"
	CheaperEqual        = "equal"
)

// CompareLoans сравнивает аннуитетный и дифференцированный кредиты
func CompareLoans(principal, annualRatePercent float64, months int) (*ComparisonResult, error) {
	annuityResult, err := AnnuitySchedule(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	differentialResult, err := DifferentialSchedule(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	a := annuityResult.Summary
	d := differentialResult.Summary

	totalPaidDiff := utils.Round2(a.TotalPaid - d.TotalPaid)
	interestDiff := utils.Round2(a.TotalInterest - d.TotalInterest)

	diff := Difference{
		TotalPaidDiff: totalPaidDiff,
		InterestDiff:  interestDiff,
	}
	var recommendation string

	switch {
	case totalPaidDiff > 0:
		diff.CheaperType = CheaperDifferential
		diff.Savings = totalPaidDiff
		recommendation = "Differential repayment costs less in total, but the first installments are higher than the annuity EMI."
	case totalPaidDiff < 0:
		diff.CheaperType = CheaperAnnuity
		diff.Savings = -totalPaidDiff
		recommendation = "Annuity repayment costs less in total and keeps the installment fixed every month."
	default:
		diff.CheaperType = CheaperEqual
		recommendation = "Both repayment types cost the same in total."
	}

	return &ComparisonResult{
		Comparison: Comparison{
			Principal:         utils.Round2(principal),
			AnnualRatePercent: utils.Round2(annualRatePercent),
			Months:            months,
			Annuity: LoanTotals{
				TotalPaid:          a.TotalPaid,
				TotalInterest:      a.TotalInterest,
				MonthlyPayment:     a.MonthlyPayment,
				OverpaymentPercent: utils.Round2(a.TotalInterest / principal * 100),
			},
			Differential: LoanTotals{
				TotalPaid:          d.TotalPaid,
				TotalInterest:      d.TotalInterest,
				FirstMonthPayment:  d.FirstMonthPayment,
				LastMonthPayment:   d.LastMonthPayment,
				OverpaymentPercent: utils.Round2(d.TotalInterest / principal * 100),
			},
			Difference:     diff,
			Recommendation: recommendation,
		},
		Annuity:      *annuityResult,
		Differential: *differentialResult,
	}, nil
}
