package validators

import (
	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/internal/config"
	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечно и лежит в допустимом диапазоне.
// Нижняя граница нарушается с violation, верхняя с exceeds_cap.
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64, below calculations.Violation) error {
	if !utils.IsFinite(value) {
		return &calculations.InputError{Field: name, Violation: calculations.ViolationNotFinite, Value: value}
	}
	if value < minInclusive {
		return &calculations.InputError{Field: name, Violation: below, Value: value}
	}
	if value > maxInclusive {
		return &calculations.InputError{Field: name, Violation: calculations.ViolationExceedsCap, Value: value}
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int, below calculations.Violation) error {
	if value < minInclusive {
		return &calculations.InputError{Field: name, Violation: below, Value: value}
	}
	if value > maxInclusive {
		return &calculations.InputError{Field: name, Violation: calculations.ViolationExceedsCap, Value: value}
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	if principal <= 0 {
		return &calculations.InputError{Field: "principal", Violation: calculations.ViolationNonPositivePrincipal, Value: principal}
	}
	return ValidatePositiveNumber("principal", principal, 0, cfg.MaxPrincipal, calculations.ViolationNonPositivePrincipal)
}

// CheckLendingAmount проверяет сумму личного займа (ноль допустим)
func CheckLendingAmount(cfg *config.Config, amount float64) error {
	return ValidatePositiveNumber("principal", amount, 0, cfg.MaxPrincipal, calculations.ViolationNegativePrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate, calculations.ViolationNegativeRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxMonths, calculations.ViolationNonPositiveTenure)
}

// CheckPaymentDay проверяет день платежа
func CheckPaymentDay(day int) error {
	if day < calculations.MinPaymentDay || day > calculations.MaxPaymentDay {
		return &calculations.InputError{Field: "payment_day", Violation: calculations.ViolationPaymentDayRange, Value: day}
	}
	return nil
}
