package finiquito

import (
	"testing"
	"time"
)

func TestYearsOfService(t *testing.T) {
	years := YearsOfService(date(2020, time.January, 1), date(2024, time.July, 1))
	if years < 4.49 || years > 4.51 {
		t.Fatalf("expected roughly 4.5 years, got %v", years)
	}

	if got := YearsOfService(date(2024, time.July, 1), date(2024, time.January, 1)); got != 0 {
		t.Fatalf("expected 0 for inverted range, got %v", got)
	}
}

func TestIndemnityYears(t *testing.T) {
	cases := []struct {
		years float64
		want  float64
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{1.4, 1.4},
		{1.5, 2},
		{2.3, 2},
		{2.5, 3},
		{4.5, 5},
		{7.49, 7},
	}
	for _, tc := range cases {
		if got := IndemnityYears(tc.years); !almostEqual(got, tc.want) {
			t.Fatalf("IndemnityYears(%v): expected %v, got %v", tc.years, tc.want, got)
		}
	}
}

func TestIndemnityYearsFromDates(t *testing.T) {
	years := YearsOfService(date(2020, time.January, 1), date(2024, time.July, 1))
	if got := IndemnityYears(years); got != 5 {
		t.Fatalf("expected 5 indemnity years, got %v", got)
	}
}
