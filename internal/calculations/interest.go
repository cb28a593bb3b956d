package calculations

import (
	"time"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// DaysInYear фиксированная база простых процентов, високосные годы не учитываются
const DaysInYear = 365

const secondsPerDay = 24 * 60 * 60

// DaysBetween число целых календарных дней от from до to (может быть отрицательным)
func DaysBetween(from, to time.Time) int {
	return int((utils.CivilDate(to).Unix() - utils.CivilDate(from).Unix()) / secondsPerDay)
}

// AccruedInterest начисляет простые проценты на сумму займа за прошедшие дни.
// Нулевое время означает отсутствующую дату, результат тогда равен 0.
func AccruedInterest(principal, annualRatePercent float64, fromDate, toDate time.Time) (float64, error) {
	if !utils.IsFinite(principal) {
		return 0, invalid("principal", ViolationNotFinite, principal)
	}
	if !utils.IsFinite(annualRatePercent) {
		return 0, invalid("annual_rate_percent", ViolationNotFinite, annualRatePercent)
	}
	if principal < 0 {
		return 0, invalid("principal", ViolationNegativePrincipal, principal)
	}
	if annualRatePercent < 0 {
		return 0, invalid("annual_rate_percent", ViolationNegativeRate, annualRatePercent)
	}
	if fromDate.IsZero() || toDate.IsZero() {
		return 0, nil
	}

	days := DaysBetween(fromDate, toDate)
	if days <= 0 {
		return 0, nil
	}
	return principal * annualRatePercent * float64(days) / (DaysInYear * 100), nil
}
