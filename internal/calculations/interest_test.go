package calculations

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestAccruedInterest(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		from              string
		to                string
		want              float64
		wantError         bool
	}{
		{
			name:              "half of leap year counts 182 days",
			principal:         10000,
			annualRatePercent: 10,
			from:              "2024-01-01",
			to:                "2024-07-01",
			want:              10000 * 10 * 182 / 36500.0,
		},
		{
			name:              "full leap year uses 366 days over a 365 base",
			principal:         36500,
			annualRatePercent: 1,
			from:              "2024-01-01",
			to:                "2025-01-01",
			want:              366,
		},
		{
			name:              "same day",
			principal:         5000,
			annualRatePercent: 12,
			from:              "2024-03-03",
			to:                "2024-03-03",
			want:              0,
		},
		{
			name:              "to before from",
			principal:         5000,
			annualRatePercent: 12,
			from:              "2024-03-03",
			to:                "2024-02-01",
			want:              0,
		},
		{
			name:              "zero rate",
			principal:         5000,
			annualRatePercent: 0,
			from:              "2024-01-01",
			to:                "2024-12-01",
			want:              0,
		},
		{
			name:              "negative principal",
			principal:         -1,
			annualRatePercent: 5,
			from:              "2024-01-01",
			to:                "2024-02-01",
			wantError:         true,
		},
		{
			name:              "negative rate",
			principal:         100,
			annualRatePercent: -5,
			from:              "2024-01-01",
			to:                "2024-02-01",
			wantError:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccruedInterest(tt.principal, tt.annualRatePercent, mustDate(t, tt.from), mustDate(t, tt.to))
			if (err != nil) != tt.wantError {
				t.Fatalf("AccruedInterest() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AccruedInterest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccruedInterestRegressionRounded(t *testing.T) {
	got, err := AccruedInterest(10000, 10, mustDate(t, "2024-01-01"), mustDate(t, "2024-07-01"))
	if err != nil {
		t.Fatalf("AccruedInterest() error = %v", err)
	}
	if math.Round(got*100)/100 != 498.63 {
		t.Errorf("expected 498.63, got %v", got)
	}
}

func TestAccruedInterestMissingDates(t *testing.T) {
	d := mustDate(t, "2024-01-01")
	if got, err := AccruedInterest(1000, 10, time.Time{}, d); err != nil || got != 0 {
		t.Errorf("missing from date: got %v, %v", got, err)
	}
	if got, err := AccruedInterest(1000, 10, d, time.Time{}); err != nil || got != 0 {
		t.Errorf("missing to date: got %v, %v", got, err)
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	from := time.Date(2024, time.March, 9, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 10, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Errorf("DaysBetween() = %d, want 1", got)
	}
	if got := DaysBetween(to, from); got != -1 {
		t.Errorf("DaysBetween() = %d, want -1", got)
	}
}

func TestDaysBetweenLongSpans(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "four centuries", from: "1800-01-01", to: "2200-01-01", want: 146097},
		{name: "before epoch", from: "1900-03-01", to: "1900-03-02", want: 1},
		{name: "backwards over centuries", from: "2400-01-01", to: "2000-01-01", want: -146097},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(mustDate(t, tt.from), mustDate(t, tt.to)); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
