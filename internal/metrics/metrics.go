package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения метки status у finance_tool_calls_total
const (
	StatusSuccess       = "success"
	StatusInvalidInput  = "invalid_input"
	StatusStateConflict = "state_conflict"
	StatusError         = "error"
)

// Значения метки error_type у finance_tool_errors_total
const (
	ErrorTypeValidation  = "validation"
	ErrorTypeState       = "state"
	ErrorTypeCalculation = "calculation"
)

var (
	// ToolCalls вызовы инструментов по исходу
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_tool_calls_total",
			Help: "Finance tool calls by outcome",
		},
		[]string{"tool_name", "status"},
	)

	// ToolErrors отклоненные вызовы с нарушенным предусловием
	ToolErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_tool_errors_total",
			Help: "Rejected or failed tool calls by error type and violated precondition",
		},
		[]string{"tool_name", "error_type", "violation"},
	)

	// ToolDuration длительность расчета
	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finance_tool_duration_seconds",
			Help:    "Tool call latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"tool_name"},
	)

	// HTTPRequests запросы к серверу по маршруту и коду ответа
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_http_requests_total",
			Help: "HTTP requests by route template and status code",
		},
		[]string{"route", "code"},
	)
)
