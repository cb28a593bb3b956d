package calculations

import (
	"testing"
)

func TestDifferentialSchedule(t *testing.T) {
	result, err := DifferentialSchedule(1000000, 12, 12)
	if err != nil {
		t.Fatalf("DifferentialSchedule() error = %v", err)
	}

	if len(result.Schedule) != 12 {
		t.Errorf("expected 12 months, got %d", len(result.Schedule))
	}

	summary := result.Summary
	if summary.FirstMonthPayment <= summary.LastMonthPayment {
		t.Error("first month payment should be greater than last month payment")
	}
	if summary.FirstMonthPayment != 93333.33 {
		t.Errorf("expected first payment 93333.33, got %f", summary.FirstMonthPayment)
	}

	if summary.TotalPaid <= summary.Principal {
		t.Error("total paid should be greater than principal")
	}

	lastMonth := result.Schedule[len(result.Schedule)-1]
	if lastMonth.RemainingPrincipal != 0 {
		t.Errorf("expected remaining principal 0, got %f", lastMonth.RemainingPrincipal)
	}
}

func TestDifferentialScheduleZeroRate(t *testing.T) {
	result, err := DifferentialSchedule(1200, 0, 12)
	if err != nil {
		t.Fatalf("DifferentialSchedule() error = %v", err)
	}
	if result.Summary.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %f", result.Summary.TotalInterest)
	}
	if result.Summary.FirstMonthPayment != result.Summary.LastMonthPayment {
		t.Errorf("zero rate payments should be flat: %f vs %f",
			result.Summary.FirstMonthPayment, result.Summary.LastMonthPayment)
	}
}

func TestDifferentialScheduleInvalidInput(t *testing.T) {
	if _, err := DifferentialSchedule(-1, 12, 12); err == nil {
		t.Error("expected error for negative principal")
	}
}
