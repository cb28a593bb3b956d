package calculations

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

func TestComputeEMI(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		months            int
		wantError         bool
		wantViolation     Violation
		check             func(*testing.T, *EMIResult)
	}{
		{
			name:              "regression 12 percent 12 months",
			principal:         100000,
			annualRatePercent: 12,
			months:            12,
			check: func(t *testing.T, result *EMIResult) {
				if result.MonthlyInstallment != 8884.88 {
					t.Errorf("expected EMI 8884.88, got %f", result.MonthlyInstallment)
				}
				if result.TotalPayment != 106618.55 {
					t.Errorf("expected total payment 106618.55, got %f", result.TotalPayment)
				}
				if result.TotalInterest != 6618.55 {
					t.Errorf("expected total interest 6618.55, got %f", result.TotalInterest)
				}
				if result.RoundedTotalPayment != 106618.56 {
					t.Errorf("expected rounded total payment 106618.56, got %f", result.RoundedTotalPayment)
				}
			},
		},
		{
			name:              "zero rate straight line",
			principal:         100000,
			annualRatePercent: 0,
			months:            7,
			check: func(t *testing.T, result *EMIResult) {
				if result.MonthlyInstallment != 14285.71 {
					t.Errorf("expected EMI 14285.71, got %f", result.MonthlyInstallment)
				}
				if result.TotalPayment != 100000 {
					t.Errorf("expected total payment 100000, got %f", result.TotalPayment)
				}
				if result.TotalInterest != 0 {
					t.Errorf("expected zero interest, got %f", result.TotalInterest)
				}
			},
		},
		{
			name:              "five year loan",
			principal:         500000,
			annualRatePercent: 9,
			months:            60,
			check: func(t *testing.T, result *EMIResult) {
				if result.MonthlyInstallment != 10379.18 {
					t.Errorf("expected EMI 10379.18, got %f", result.MonthlyInstallment)
				}
				if result.TotalInterest != 122750.66 {
					t.Errorf("expected total interest 122750.66, got %f", result.TotalInterest)
				}
			},
		},
		{
			name:              "zero principal",
			principal:         0,
			annualRatePercent: 10,
			months:            12,
			wantError:         true,
			wantViolation:     ViolationNonPositivePrincipal,
		},
		{
			name:              "negative principal",
			principal:         -5,
			annualRatePercent: 10,
			months:            12,
			wantError:         true,
			wantViolation:     ViolationNonPositivePrincipal,
		},
		{
			name:              "zero tenure",
			principal:         1000,
			annualRatePercent: 10,
			months:            0,
			wantError:         true,
			wantViolation:     ViolationNonPositiveTenure,
		},
		{
			name:              "negative rate",
			principal:         1000,
			annualRatePercent: -1,
			months:            12,
			wantError:         true,
			wantViolation:     ViolationNegativeRate,
		},
		{
			name:              "NaN principal",
			principal:         math.NaN(),
			annualRatePercent: 1,
			months:            12,
			wantError:         true,
			wantViolation:     ViolationNotFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeEMI(tt.principal, tt.annualRatePercent, tt.months)
			if (err != nil) != tt.wantError {
				t.Fatalf("ComputeEMI() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				if v, ok := ViolationOf(err); !ok || v != tt.wantViolation {
					t.Errorf("expected violation %s, got %s", tt.wantViolation, v)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestMonthlyInstallmentProperties(t *testing.T) {
	principals := []float64{1, 999.99, 100000, 2500000}
	rates := []float64{0, 0.5, 7.25, 12, 36, 199}
	tenures := []int{1, 6, 12, 37, 240, 600}

	for _, p := range principals {
		for _, rate := range rates {
			for _, n := range tenures {
				emi, err := MonthlyInstallment(p, rate, n)
				if err != nil {
					t.Fatalf("MonthlyInstallment(%v, %v, %d) error = %v", p, rate, n, err)
				}
				if emi <= 0 {
					t.Errorf("MonthlyInstallment(%v, %v, %d) = %v, want > 0", p, rate, n, emi)
				}

				total := emi * float64(n)
				if rate == 0 {
					if math.Abs(emi-p/float64(n)) > 1e-9 {
						t.Errorf("zero rate EMI %v != %v", emi, p/float64(n))
					}
				} else if total < p {
					t.Errorf("emi*n = %v < principal %v (rate %v, n %d)", total, p, rate, n)
				}

				again, _ := MonthlyInstallment(p, rate, n)
				if again != emi {
					t.Errorf("MonthlyInstallment not deterministic: %v != %v", again, emi)
				}

				result, err := ComputeEMI(p, rate, n)
				if err != nil {
					t.Fatalf("ComputeEMI() error = %v", err)
				}
				if result.TotalInterest < 0 {
					t.Errorf("negative total interest %v", result.TotalInterest)
				}
				if (rate == 0) != (result.TotalInterest == 0) && p >= 1000 {
					t.Errorf("total interest %v inconsistent with rate %v", result.TotalInterest, rate)
				}
				// округление до или после умножения расходится не более чем на полкопейки за месяц
				if math.Abs(result.RoundedTotalPayment-result.TotalPayment) > 0.005*float64(n)+0.01 {
					t.Errorf("rounding paths diverge: %v vs %v", result.RoundedTotalPayment, result.TotalPayment)
				}
				if utils.Round2(emi) != result.MonthlyInstallment {
					t.Errorf("displayed EMI %v != Round2(%v)", result.MonthlyInstallment, emi)
				}
			}
		}
	}
}
