package utils

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout формат дат во входных параметрах и ответах
const DateLayout = "2006-01-02"

// Round2 округляет число до 2 знаков после запятой (половина вверх от нуля).
// Округляется десятичная запись числа, поэтому 1.005 дает 1.01.
// NaN и бесконечности возвращаются как есть.
func Round2(value float64) float64 {
	if !IsFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// DaysInMonth возвращает количество дней в месяце с учетом високосного года
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CivilDate отбрасывает время суток, оставляя календарную дату в UTC
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate форматирует дату в YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
