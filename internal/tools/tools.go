package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/internal/config"
	"github.com/cloud-ru/emi-finance-go/internal/metrics"
	"github.com/cloud-ru/emi-finance-go/internal/records"
	"github.com/cloud-ru/emi-finance-go/internal/validators"
	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// DueDateResult ответ next_due_date
type DueDateResult struct {
	Scheduled   bool   `json:"scheduled"`
	NextDueDate string `json:"next_due_date,omitempty"`
}

// ExecutionResult ответ next_execution
type ExecutionResult struct {
	Frequency     calculations.Frequency `json:"frequency"`
	NextExecution string                 `json:"next_execution"`
}

// InterestResult ответ accrued_interest
type InterestResult struct {
	Days            int     `json:"days"`
	AccruedInterest float64 `json:"accrued_interest"`
}

// toolCall собирает трейсинг и метрики одного вызова
type toolCall struct {
	name    string
	span    trace.Span
	started time.Time
}

func startCall(ctx context.Context, tracer trace.Tracer, toolName string) (context.Context, *toolCall) {
	ctx, span := tracer.Start(ctx, toolName)
	return ctx, &toolCall{name: toolName, span: span, started: time.Now()}
}

func (c *toolCall) end() {
	metrics.ToolDuration.WithLabelValues(c.name).Observe(time.Since(c.started).Seconds())
	c.span.End()
}

// violationLabel имя нарушенного предусловия для метрик; ошибки разбора параметров его не несут
func violationLabel(err error) string {
	if v, ok := calculations.ViolationOf(err); ok {
		return string(v)
	}
	return "unspecified"
}

func (c *toolCall) reject(status, errorType string, err error) {
	violation := violationLabel(err)
	c.span.SetAttributes(
		attribute.String("error", errorType),
		attribute.String("violation", violation),
	)
	c.span.RecordError(err)
	metrics.ToolCalls.WithLabelValues(c.name, status).Inc()
	metrics.ToolErrors.WithLabelValues(c.name, errorType, violation).Inc()
}

// invalid фиксирует ошибку входных данных
func (c *toolCall) invalid(err error) error {
	c.reject(metrics.StatusInvalidInput, metrics.ErrorTypeValidation, err)
	return fmt.Errorf("invalid parameters: %w", err)
}

// failed разбирает ошибку ядра: входные данные, состояние записи или сбой расчета
func (c *toolCall) failed(err error) error {
	switch {
	case errors.Is(err, calculations.ErrInvalidInput):
		return c.invalid(err)
	case errors.Is(err, records.ErrLoanNotActive):
		c.reject(metrics.StatusStateConflict, metrics.ErrorTypeState, err)
		return fmt.Errorf("payment rejected: %w", err)
	}
	c.reject(metrics.StatusError, metrics.ErrorTypeCalculation, err)
	return fmt.Errorf("calculation failed: %w", err)
}

func (c *toolCall) succeeded(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(append(attrs, attribute.Bool("success", true))...)
	metrics.ToolCalls.WithLabelValues(c.name, metrics.StatusSuccess).Inc()
}

// loanParams общие параметры кредитных инструментов
type loanParams struct {
	principal         float64
	annualRatePercent float64
	months            int
}

func readLoanParams(cfg *config.Config, params map[string]interface{}) (loanParams, error) {
	var p loanParams
	var err error
	if p.principal, err = floatParam(params, "principal"); err != nil {
		return p, err
	}
	if p.annualRatePercent, err = floatParam(params, "annual_rate_percent"); err != nil {
		return p, err
	}
	if p.months, err = intParam(params, "months"); err != nil {
		return p, err
	}

	if err := validators.CheckPrincipal(cfg, p.principal); err != nil {
		return p, err
	}
	if err := validators.CheckRate(cfg, p.annualRatePercent); err != nil {
		return p, err
	}
	if err := validators.CheckMonths(cfg, p.months); err != nil {
		return p, err
	}
	return p, nil
}

func (p loanParams) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("principal", p.principal),
		attribute.Float64("annual_rate_percent", p.annualRatePercent),
		attribute.Int("months", p.months),
	}
}

// EMICalculateHandler рассчитывает ежемесячный платеж и итоги
func EMICalculateHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "emi_calculate")
		defer call.end()

		p, err := readLoanParams(cfg, params)
		call.span.SetAttributes(p.attributes()...)
		if err != nil {
			return nil, call.invalid(err)
		}

		result, err := calculations.ComputeEMI(p.principal, p.annualRatePercent, p.months)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(
			attribute.Float64("monthly_installment", result.MonthlyInstallment),
			attribute.Float64("total_payment", result.TotalPayment),
		)
		return result, nil
	}
}

// scheduleDates читает необязательные start_date и payment_day графика
func scheduleDates(params map[string]interface{}) (time.Time, *int, error) {
	start, err := optionalDateParam(params, "start_date")
	if err != nil {
		return time.Time{}, nil, err
	}
	day, err := optionalIntParam(params, "payment_day")
	if err != nil {
		return time.Time{}, nil, err
	}
	if day != nil {
		if err := validators.CheckPaymentDay(*day); err != nil {
			return time.Time{}, nil, err
		}
		if start.IsZero() {
			return time.Time{}, nil, paramError("start_date", "required with payment_day")
		}
	}
	if day == nil && !start.IsZero() {
		d := start.Day()
		day = &d
	}
	return start, day, nil
}

func scheduleHandler(cfg *config.Config, tracer trace.Tracer, toolName string,
	build func(principal, annualRatePercent float64, months int) (*calculations.CalculationResult, error)) ToolHandler {

	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, toolName)
		defer call.end()

		p, err := readLoanParams(cfg, params)
		call.span.SetAttributes(p.attributes()...)
		if err != nil {
			return nil, call.invalid(err)
		}
		start, day, err := scheduleDates(params)
		if err != nil {
			return nil, call.invalid(err)
		}

		result, err := build(p.principal, p.annualRatePercent, p.months)
		if err != nil {
			return nil, call.failed(err)
		}
		if day != nil {
			if err := calculations.WithDueDates(result, start, *day); err != nil {
				return nil, call.failed(err)
			}
		}

		call.succeeded(attribute.Float64("total_paid", result.Summary.TotalPaid))
		return result, nil
	}
}

// LoanScheduleAnnuityHandler обрабатывает запрос на расчет аннуитетного графика
func LoanScheduleAnnuityHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return scheduleHandler(cfg, tracer, "loan_schedule_annuity", calculations.AnnuitySchedule)
}

// LoanScheduleDifferentialHandler обрабатывает запрос на расчет дифференцированного графика
func LoanScheduleDifferentialHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return scheduleHandler(cfg, tracer, "loan_schedule_differential", calculations.DifferentialSchedule)
}

// CompareLoanSchedulesHandler обрабатывает запрос на сравнение кредитов
func CompareLoanSchedulesHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "compare_loan_schedules")
		defer call.end()

		p, err := readLoanParams(cfg, params)
		call.span.SetAttributes(p.attributes()...)
		if err != nil {
			return nil, call.invalid(err)
		}

		result, err := calculations.CompareLoans(p.principal, p.annualRatePercent, p.months)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(attribute.String("cheaper_type", result.Comparison.Difference.CheaperType))
		return result, nil
	}
}

// NextDueDateHandler проецирует следующую дату платежа по якорному дню.
// Без payment_day платеж не запланирован, это не ошибка.
func NextDueDateHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "next_due_date")
		defer call.end()

		start, err := dateParam(params, "start_date")
		if err != nil {
			return nil, call.invalid(err)
		}
		day, err := optionalIntParam(params, "payment_day")
		if err != nil {
			return nil, call.invalid(err)
		}
		if day == nil {
			call.succeeded(attribute.Bool("scheduled", false))
			return &DueDateResult{Scheduled: false}, nil
		}
		call.span.SetAttributes(attribute.Int("payment_day", *day))

		next, err := calculations.NextDueDate(start, *day)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(attribute.String("next_due_date", utils.FormatDate(next)))
		return &DueDateResult{Scheduled: true, NextDueDate: utils.FormatDate(next)}, nil
	}
}

// NextExecutionHandler сдвигает дату регулярной операции на период
func NextExecutionHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "next_execution")
		defer call.end()

		from, err := dateParam(params, "from_date")
		if err != nil {
			return nil, call.invalid(err)
		}
		raw, err := stringParam(params, "frequency")
		if err != nil {
			return nil, call.invalid(err)
		}
		frequency, err := calculations.ParseFrequency(raw)
		if err != nil {
			return nil, call.invalid(err)
		}
		call.span.SetAttributes(attribute.String("frequency", string(frequency)))

		next, err := calculations.NextExecution(from, frequency)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded()
		return &ExecutionResult{Frequency: frequency, NextExecution: utils.FormatDate(next)}, nil
	}
}

// AccruedInterestHandler начисляет простые проценты по личному займу
func AccruedInterestHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "accrued_interest")
		defer call.end()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, call.invalid(err)
		}
		rate, err := floatParam(params, "annual_rate_percent")
		if err != nil {
			return nil, call.invalid(err)
		}
		if err := validators.CheckLendingAmount(cfg, principal); err != nil {
			return nil, call.invalid(err)
		}
		if err := validators.CheckRate(cfg, rate); err != nil {
			return nil, call.invalid(err)
		}
		from, err := optionalDateParam(params, "from_date")
		if err != nil {
			return nil, call.invalid(err)
		}
		to, err := optionalDateParam(params, "to_date")
		if err != nil {
			return nil, call.invalid(err)
		}

		interest, err := calculations.AccruedInterest(principal, rate, from, to)
		if err != nil {
			return nil, call.failed(err)
		}

		days := 0
		if !from.IsZero() && !to.IsZero() {
			if days = calculations.DaysBetween(from, to); days < 0 {
				days = 0
			}
		}

		call.succeeded(attribute.Int("days", days))
		return &InterestResult{Days: days, AccruedInterest: utils.Round2(interest)}, nil
	}
}

// LoanPreviewHandler собирает запись кредита с производными полями
func LoanPreviewHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "loan_preview")
		defer call.end()

		var in records.LoanInput
		var err error
		if in.PrincipalAmount, err = decimalParam(params, "principal_amount"); err != nil {
			return nil, call.invalid(err)
		}
		if in.InterestRate, err = decimalParam(params, "interest_rate"); err != nil {
			return nil, call.invalid(err)
		}
		if in.TenureMonths, err = intParam(params, "tenure_months"); err != nil {
			return nil, call.invalid(err)
		}
		if in.StartDate, err = dateParam(params, "start_date"); err != nil {
			return nil, call.invalid(err)
		}
		if in.PaymentDay, err = optionalIntParam(params, "payment_day"); err != nil {
			return nil, call.invalid(err)
		}
		if kind, ok := params["kind"].(string); ok {
			in.Kind = records.LoanKind(kind)
		}
		if name, ok := params["name"].(string); ok {
			in.Name = name
		}

		if err := validators.CheckPrincipal(cfg, in.PrincipalAmount.InexactFloat64()); err != nil {
			return nil, call.invalid(err)
		}
		if err := validators.CheckRate(cfg, in.InterestRate.InexactFloat64()); err != nil {
			return nil, call.invalid(err)
		}
		if err := validators.CheckMonths(cfg, in.TenureMonths); err != nil {
			return nil, call.invalid(err)
		}

		loan, err := records.NewLoan(in)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(
			attribute.String("loan_id", loan.ID.String()),
			attribute.String("emi_amount", loan.EMIAmount.String()),
		)
		return loan, nil
	}
}

// LoanApplyPaymentHandler применяет платеж к снимку кредита
func LoanApplyPaymentHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "loan_apply_payment")
		defer call.end()

		var loan records.Loan
		if err := objectParam(params, "loan", &loan, "start_date", "next_due_date"); err != nil {
			return nil, call.invalid(err)
		}
		amount, err := decimalParam(params, "amount")
		if err != nil {
			return nil, call.invalid(err)
		}
		call.span.SetAttributes(
			attribute.String("loan_id", loan.ID.String()),
			attribute.String("amount", amount.String()),
		)

		updated, err := records.ApplyPayment(loan, amount)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(attribute.String("status", string(updated.Status)))
		return updated, nil
	}
}

// LendingBalanceHandler считает долг и статус личного займа на дату
func LendingBalanceHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, call := startCall(ctx, tracer, "lending_balance")
		defer call.end()

		var lending records.PersonalLending
		if err := objectParam(params, "lending", &lending, "date", "due_date"); err != nil {
			return nil, call.invalid(err)
		}
		asOf, err := dateParam(params, "as_of")
		if err != nil {
			return nil, call.invalid(err)
		}
		if err := validators.CheckLendingAmount(cfg, lending.Amount.InexactFloat64()); err != nil {
			return nil, call.invalid(err)
		}

		balance, err := lending.Balance(asOf)
		if err != nil {
			return nil, call.failed(err)
		}

		call.succeeded(
			attribute.String("status", string(balance.Status)),
			attribute.String("balance", balance.Balance.StringFixed(2)),
		)
		return balance, nil
	}
}
