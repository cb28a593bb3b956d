package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// LendingType направление личного займа
type LendingType string

const (
	Lent     LendingType = "lent"
	Borrowed LendingType = "borrowed"
)

// LendingStatus состояние личного займа
type LendingStatus string

const (
	LendingPending LendingStatus = "pending"
	LendingPartial LendingStatus = "partial"
	LendingPaid    LendingStatus = "paid"
	LendingOverdue LendingStatus = "overdue"
)

// PersonalLending запись о деньгах, данных или взятых в долг
type PersonalLending struct {
	ID           uuid.UUID        `json:"id"`
	Type         LendingType      `json:"type" validate:"required,oneof=lent borrowed"`
	Counterparty string           `json:"counterparty,omitempty" validate:"max=128"`
	Amount       decimal.Decimal  `json:"amount"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
	Date         time.Time        `json:"date" validate:"required"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	RepaidAmount decimal.Decimal  `json:"repaid_amount"`
}

// LendingBalance состояние займа на дату
type LendingBalance struct {
	Principal       decimal.Decimal `json:"principal"`
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
	Repaid          decimal.Decimal `json:"repaid"`
	Balance         decimal.Decimal `json:"balance"`
	Days            int             `json:"days"`
	Status          LendingStatus   `json:"status"`
}

// Validate проверяет теги записи и знак сумм
func (l PersonalLending) Validate() error {
	if err := validate.Struct(l); err != nil {
		return validationError(err)
	}
	if l.Amount.LessThanOrEqual(decimal.Zero) {
		return &calculations.InputError{Field: "amount", Violation: calculations.ViolationNonPositivePrincipal, Value: l.Amount.String()}
	}
	if l.RepaidAmount.IsNegative() {
		return &calculations.InputError{Field: "repaid_amount", Violation: calculations.ViolationNegativePrincipal, Value: l.RepaidAmount.String()}
	}
	return nil
}

// Balance считает сумму долга на дату asOf: основной долг плюс простые проценты минус возвраты
func (l PersonalLending) Balance(asOf time.Time) (*LendingBalance, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	interest := decimal.Zero
	if l.InterestRate != nil {
		accrued, err := calculations.AccruedInterest(l.Amount.InexactFloat64(), l.InterestRate.InexactFloat64(), l.Date, asOf)
		if err != nil {
			return nil, err
		}
		interest = decimal.NewFromFloat(accrued).Round(2)
	}

	balance := l.Amount.Add(interest).Sub(l.RepaidAmount)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	days := calculations.DaysBetween(l.Date, asOf)
	if days < 0 {
		days = 0
	}

	return &LendingBalance{
		Principal:       l.Amount,
		AccruedInterest: interest,
		Repaid:          l.RepaidAmount,
		Balance:         balance,
		Days:            days,
		Status:          deriveStatus(balance, l.RepaidAmount, l.DueDate, asOf),
	}, nil
}

// DeriveStatus определяет статус займа на дату asOf
func (l PersonalLending) DeriveStatus(asOf time.Time) (LendingStatus, error) {
	b, err := l.Balance(asOf)
	if err != nil {
		return "", err
	}
	return b.Status, nil
}

func deriveStatus(balance, repaid decimal.Decimal, dueDate *time.Time, asOf time.Time) LendingStatus {
	switch {
	case balance.IsZero():
		return LendingPaid
	case dueDate != nil && utils.CivilDate(asOf).After(utils.CivilDate(*dueDate)):
		return LendingOverdue
	case repaid.IsPositive():
		return LendingPartial
	default:
		return LendingPending
	}
}
