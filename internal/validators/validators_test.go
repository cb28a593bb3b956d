package validators

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name          string
		validator     func(*config.Config, interface{}) error
		value         interface{}
		wantError     bool
		wantViolation calculations.Violation
	}{
		{
			name:      "valid principal",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     1000000.0,
			wantError: false,
		},
		{
			name:          "invalid principal zero",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:         0.0,
			wantError:     true,
			wantViolation: calculations.ViolationNonPositivePrincipal,
		},
		{
			name:          "invalid principal negative",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:         -1000.0,
			wantError:     true,
			wantViolation: calculations.ViolationNonPositivePrincipal,
		},
		{
			name:          "principal above cap",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:         1e15,
			wantError:     true,
			wantViolation: calculations.ViolationExceedsCap,
		},
		{
			name:          "principal infinite",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:         math.Inf(1),
			wantError:     true,
			wantViolation: calculations.ViolationNotFinite,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     12.0,
			wantError: false,
		},
		{
			name:      "zero rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:          "invalid rate negative",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:         -1.0,
			wantError:     true,
			wantViolation: calculations.ViolationNegativeRate,
		},
		{
			name:      "valid months",
			validator: func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:     12,
			wantError: false,
		},
		{
			name:          "invalid months zero",
			validator:     func(cfg *config.Config, v interface{}) error { return CheckMonths(cfg, v.(int)) },
			value:         0,
			wantError:     true,
			wantViolation: calculations.ViolationNonPositiveTenure,
		},
		{
			name:      "lending amount zero allowed",
			validator: func(cfg *config.Config, v interface{}) error { return CheckLendingAmount(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:          "payment day out of range",
			validator:     func(_ *config.Config, v interface{}) error { return CheckPaymentDay(v.(int)) },
			value:         32,
			wantError:     true,
			wantViolation: calculations.ViolationPaymentDayRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Fatalf("validator error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError {
				return
			}
			if !errors.Is(err, calculations.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if v, _ := calculations.ViolationOf(err); v != tt.wantViolation {
				t.Errorf("violation = %s, want %s", v, tt.wantViolation)
			}
		})
	}
}
