package calculations

import "testing"

func TestCompareLoans(t *testing.T) {
	result, err := CompareLoans(1000000, 12, 12)
	if err != nil {
		t.Fatalf("CompareLoans() error = %v", err)
	}

	c := result.Comparison
	if c.Difference.CheaperType != CheaperDifferential {
		t.Errorf("expected differential to be cheaper, got %s", c.Difference.CheaperType)
	}
	if c.Difference.Savings <= 0 {
		t.Errorf("expected positive savings, got %f", c.Difference.Savings)
	}
	if c.Annuity.MonthlyPayment != result.Annuity.Summary.MonthlyPayment {
		t.Errorf("annuity totals mismatch: %f vs %f", c.Annuity.MonthlyPayment, result.Annuity.Summary.MonthlyPayment)
	}
	if c.Recommendation == "" {
		t.Error("expected a recommendation")
	}
}

func TestCompareLoansZeroRate(t *testing.T) {
	result, err := CompareLoans(1200, 0, 12)
	if err != nil {
		t.Fatalf("CompareLoans() error = %v", err)
	}
	if result.Comparison.Difference.CheaperType != CheaperEqual {
		t.Errorf("expected equal cost at zero rate, got %s", result.Comparison.Difference.CheaperType)
	}
	if result.Comparison.Difference.Savings != 0 {
		t.Errorf("expected zero savings, got %f", result.Comparison.Difference.Savings)
	}
}
