package calculations

import (
	"strings"
	"time"

	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

const (
	MinPaymentDay = 1
	MaxPaymentDay = 31
)

// Frequency период повторения регулярной операции
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// Frequencies все поддерживаемые периоды
var Frequencies = []Frequency{Weekly, Biweekly, Monthly, Quarterly, Yearly}

// ParseFrequency разбирает период без учета регистра
func ParseFrequency(value string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Frequencies {
		if f == known {
			return f, nil
		}
	}
	return "", invalid("frequency", ViolationUnknownFrequency, value)
}

// addMonthsClamped сдвигает дату на n календарных месяцев,
// день прижимается к последнему дню целевого месяца
func addMonthsClamped(t time.Time, months int, day int) time.Time {
	year, month, _ := t.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := utils.DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	h, mi, s := t.Clock()
	return time.Date(target.Year(), target.Month(), day, h, mi, s, t.Nanosecond(), t.Location())
}

// NextDueDate возвращает дату платежа в месяце, следующем за месяцем startDate,
// в день paymentDay (или последний день месяца, если такого дня нет)
func NextDueDate(startDate time.Time, paymentDay int) (time.Time, error) {
	if paymentDay < MinPaymentDay || paymentDay > MaxPaymentDay {
		return time.Time{}, invalid("payment_day", ViolationPaymentDayRange, paymentDay)
	}
	return addMonthsClamped(startDate, 1, paymentDay), nil
}

// DueDates строит count последовательных дат платежей, сохраняя якорный день
// даже после месяца, в котором он был прижат
func DueDates(startDate time.Time, paymentDay, count int) ([]time.Time, error) {
	if count < 0 {
		return nil, invalid("count", ViolationNegativeCount, count)
	}
	dates := make([]time.Time, 0, count)
	current := startDate
	for i := 0; i < count; i++ {
		next, err := NextDueDate(current, paymentDay)
		if err != nil {
			return nil, err
		}
		dates = append(dates, next)
		current = next
	}
	return dates, nil
}

// NextExecution сдвигает fromDate на интервал периода
func NextExecution(fromDate time.Time, frequency Frequency) (time.Time, error) {
	switch frequency {
	case Weekly:
		return fromDate.AddDate(0, 0, 7), nil
	case Biweekly:
		return fromDate.AddDate(0, 0, 14), nil
	case Monthly:
		return addMonthsClamped(fromDate, 1, fromDate.Day()), nil
	case Quarterly:
		return addMonthsClamped(fromDate, 3, fromDate.Day()), nil
	case Yearly:
		return addMonthsClamped(fromDate, 12, fromDate.Day()), nil
	default:
		return time.Time{}, invalid("frequency", ViolationUnknownFrequency, string(frequency))
	}
}

// WithDueDates проставляет даты платежей в записях графика
func WithDueDates(result *CalculationResult, startDate time.Time, paymentDay int) error {
	dates, err := DueDates(startDate, paymentDay, len(result.Schedule))
	if err != nil {
		return err
	}
	for i := range result.Schedule {
		result.Schedule[i].DueDate = utils.FormatDate(dates[i])
	}
	return nil
}
