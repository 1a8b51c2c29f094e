package finiquito

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVacationSpanZeroDays(t *testing.T) {
	if got := VacationSpan(date(2024, time.June, 28), 0); got != 0 {
		t.Fatalf("expected span 0, got %v", got)
	}
}

func TestVacationSpanFractionOnly(t *testing.T) {
	// No whole days: the fraction passes through untouched, weekends ignored.
	if got := VacationSpan(date(2024, time.June, 28), 0.5); !almostEqual(got, 0.5) {
		t.Fatalf("expected span 0.5, got %v", got)
	}
}

func TestVacationSpan(t *testing.T) {
	cases := []struct {
		name    string
		lastDay time.Time
		days    float64
		want    float64
	}{
		// Friday end: weekend before the period starts, two full weeks spanned.
		{"ten days after friday", date(2024, time.June, 28), 10, 14},
		// Fraction at the threshold does not spill over the weekend.
		{"fraction at threshold", date(2024, time.June, 28), 10.2, 14.2},
		// Fraction above the threshold after a Friday extends across the weekend.
		{"fraction spills weekend", date(2024, time.June, 28), 10.3, 16.3},
		// Mid-week period without weekends in between.
		{"three days mid week", date(2024, time.July, 1), 3, 3},
		// Period ending Friday with a spilling fraction.
		{"friday end with fraction", date(2024, time.July, 3), 2.5, 4.5},
		// Period ending mid-week: fraction above threshold but no adjacent weekend.
		{"mid week end with fraction", date(2024, time.July, 1), 2.5, 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := VacationSpan(tc.lastDay, tc.days)
			if !almostEqual(got, tc.want) {
				t.Fatalf("expected span %v, got %v", tc.want, got)
			}
		})
	}
}

func TestVacationAmount(t *testing.T) {
	if got := VacationAmount(900000, 0, 14); got != 420000 {
		t.Fatalf("expected 420000, got %v", got)
	}
	if got := VacationAmount(1000000, 0, 14); got != 466667 {
		t.Fatalf("expected 466667, got %v", got)
	}
	if got := VacationAmount(1000000, 0, 0); got != 0 {
		t.Fatalf("expected 0 for empty span, got %v", got)
	}
}
