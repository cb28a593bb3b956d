package tools

import (
	"errors"
	"sort"

	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/emi-finance-go/internal/config"
)

// ErrUnknownTool запрошен незарегистрированный инструмент
var ErrUnknownTool = errors.New("unknown tool")

// Registry набор инструментов по имени
type Registry map[string]ToolHandler

// NewRegistry регистрирует все инструменты
func NewRegistry(cfg *config.Config, tracer trace.Tracer) Registry {
	return Registry{
		"emi_calculate":              EMICalculateHandler(cfg, tracer),
		"loan_schedule_annuity":      LoanScheduleAnnuityHandler(cfg, tracer),
		"loan_schedule_differential": LoanScheduleDifferentialHandler(cfg, tracer),
		"compare_loan_schedules":     CompareLoanSchedulesHandler(cfg, tracer),
		"next_due_date":              NextDueDateHandler(cfg, tracer),
		"next_execution":             NextExecutionHandler(cfg, tracer),
		"accrued_interest":           AccruedInterestHandler(cfg, tracer),
		"loan_preview":               LoanPreviewHandler(cfg, tracer),
		"loan_apply_payment":         LoanApplyPaymentHandler(cfg, tracer),
		"lending_balance":            LendingBalanceHandler(cfg, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup находит инструмент по имени
func (r Registry) Lookup(name string) (ToolHandler, error) {
	h, ok := r[name]
	if !ok {
		return nil, ErrUnknownTool
	}
	return h, nil
}
