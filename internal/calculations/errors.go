package calculations

import (
	"errors"
	"fmt"
)

// ErrInvalidInput единственный вид ошибки расчетного ядра
var ErrInvalidInput = errors.New("invalid input")

// Violation описывает, какое предусловие нарушено
type Violation string

const (
	ViolationNonPositivePrincipal Violation = "non_positive_principal"
	ViolationNegativePrincipal    Violation = "negative_principal"
	ViolationNonPositiveTenure    Violation = "non_positive_tenure"
	ViolationNegativeRate         Violation = "negative_rate"
	ViolationPaymentDayRange      Violation = "payment_day_out_of_range"
	ViolationUnknownFrequency     Violation = "unknown_frequency"
	ViolationNotFinite            Violation = "not_finite"
	ViolationExceedsCap           Violation = "exceeds_cap"
	ViolationNegativeCount        Violation = "negative_count"
)

// InputError сообщает о неверном входном параметре.
// errors.Is(err, ErrInvalidInput) истинно для любого InputError.
type InputError struct {
	Field     string
	Violation Violation
	Value     interface{}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s (got %v)", ErrInvalidInput, e.Field, e.Violation, e.Value)
}

// Is связывает InputError с ErrInvalidInput
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field string, violation Violation, value interface{}) error {
	return &InputError{Field: field, Violation: violation, Value: value}
}

// ViolationOf извлекает нарушенное предусловие из цепочки ошибок
func ViolationOf(err error) (Violation, bool) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Violation, true
	}
	return "", false
}
