package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
)

// LoanKind различает обычный кредит и покупку в рассрочку
type LoanKind string

const (
	KindLoan        LoanKind = "loan"
	KindPurchaseEMI LoanKind = "purchase_emi"
)

// LoanStatus состояние кредита
type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanClosed    LoanStatus = "closed"
	LoanDefaulted LoanStatus = "defaulted"
)

var (
	// ErrLoanNotActive платеж или дефолт по закрытому/дефолтному кредиту
	ErrLoanNotActive = errors.New("loan is not active")
	// ErrNonPositivePayment сумма платежа должна быть положительной
	ErrNonPositivePayment = fmt.Errorf("%w: payment amount must be positive", calculations.ErrInvalidInput)
)

var validate = validator.New()

// LoanInput поля формы создания кредита
type LoanInput struct {
	Kind            LoanKind        `json:"kind" validate:"omitempty,oneof=loan purchase_emi"`
	Name            string          `json:"name" validate:"max=128"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TenureMonths    int             `json:"tenure_months" validate:"gt=0"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	PaymentDay      *int            `json:"payment_day,omitempty" validate:"omitempty,min=1,max=31"`
}

// Loan снимок кредита с производными полями
type Loan struct {
	ID                uuid.UUID       `json:"id"`
	Kind              LoanKind        `json:"kind"`
	Name              string          `json:"name,omitempty"`
	PrincipalAmount   decimal.Decimal `json:"principal_amount"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	TenureMonths      int             `json:"tenure_months"`
	StartDate         time.Time       `json:"start_date"`
	PaymentDay        *int            `json:"payment_day,omitempty"`
	EMIAmount         decimal.Decimal `json:"emi_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	NextDueDate       *time.Time      `json:"next_due_date,omitempty"`
	Status            LoanStatus      `json:"status"`
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed on %q", calculations.ErrInvalidInput, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", calculations.ErrInvalidInput, err)
}

// NewLoan создает активный кредит и рассчитывает платеж и первую дату платежа
func NewLoan(in LoanInput) (*Loan, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	if in.Kind == "" {
		in.Kind = KindLoan
	}

	emi, err := calculations.ComputeEMI(in.PrincipalAmount.InexactFloat64(), in.InterestRate.InexactFloat64(), in.TenureMonths)
	if err != nil {
		return nil, err
	}

	loan := &Loan{
		ID:                uuid.New(),
		Kind:              in.Kind,
		Name:              in.Name,
		PrincipalAmount:   in.PrincipalAmount,
		InterestRate:      in.InterestRate,
		TenureMonths:      in.TenureMonths,
		StartDate:         in.StartDate,
		PaymentDay:        in.PaymentDay,
		EMIAmount:         decimal.NewFromFloat(emi.MonthlyInstallment).Round(2),
		OutstandingAmount: in.PrincipalAmount,
		Status:            LoanActive,
	}

	if in.PaymentDay != nil {
		next, err := calculations.NextDueDate(in.StartDate, *in.PaymentDay)
		if err != nil {
			return nil, err
		}
		loan.NextDueDate = &next
	}

	return loan, nil
}

// ApplyPayment возвращает копию кредита после платежа.
// Остаток не уходит ниже нуля, при нулевом остатке кредит закрывается.
func ApplyPayment(loan Loan, amount decimal.Decimal) (*Loan, error) {
	if loan.Status != LoanActive {
		return nil, fmt.Errorf("%w: status %s", ErrLoanNotActive, loan.Status)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositivePayment
	}

	updated := loan
	updated.OutstandingAmount = loan.OutstandingAmount.Sub(amount)

	if updated.OutstandingAmount.LessThanOrEqual(decimal.Zero) {
		updated.OutstandingAmount = decimal.Zero
		updated.Status = LoanClosed
		updated.NextDueDate = nil
		return &updated, nil
	}

	if loan.NextDueDate != nil && loan.PaymentDay != nil {
		next, err := calculations.NextDueDate(*loan.NextDueDate, *loan.PaymentDay)
		if err != nil {
			return nil, err
		}
		updated.NextDueDate = &next
	}

	return &updated, nil
}

// MarkDefaulted переводит активный кредит в дефолт
func MarkDefaulted(loan Loan) (*Loan, error) {
	if loan.Status != LoanActive {
		return nil, fmt.Errorf("%w: status %s", ErrLoanNotActive, loan.Status)
	}
	updated := loan
	updated.Status = LoanDefaulted
	return &updated, nil
}
