package finiquito

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	if !IsBusinessDay(date(2024, time.July, 1)) {
		t.Fatal("expected Monday to be a business day")
	}
	if !IsBusinessDay(date(2024, time.July, 5)) {
		t.Fatal("expected Friday to be a business day")
	}
	if IsBusinessDay(date(2024, time.July, 6)) {
		t.Fatal("expected Saturday to be a non-business day")
	}
	if IsBusinessDay(date(2024, time.July, 7)) {
		t.Fatal("expected Sunday to be a non-business day")
	}
}

func TestNextBusinessDay(t *testing.T) {
	cases := []struct {
		from time.Time
		want time.Time
	}{
		{date(2024, time.July, 1), date(2024, time.July, 2)},
		{date(2024, time.July, 5), date(2024, time.July, 8)},
		{date(2024, time.July, 6), date(2024, time.July, 8)},
	}
	for _, tc := range cases {
		got := NextBusinessDay(tc.from)
		if !got.Equal(tc.want) {
			t.Fatalf("NextBusinessDay(%s): expected %s, got %s", tc.from.Format("2006-01-02"), tc.want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	}
}

func TestNonBusinessRun(t *testing.T) {
	// Friday: the weekend is skipped before Monday.
	count, next := NonBusinessRun(date(2024, time.July, 5))
	if count != 2 {
		t.Fatalf("expected 2 skipped days, got %d", count)
	}
	if !next.Equal(date(2024, time.July, 8)) {
		t.Fatalf("expected next business day 2024-07-08, got %s", next.Format("2006-01-02"))
	}

	// Mid-week: nothing skipped.
	count, next = NonBusinessRun(date(2024, time.July, 2))
	if count != 0 {
		t.Fatalf("expected 0 skipped days, got %d", count)
	}
	if !next.Equal(date(2024, time.July, 3)) {
		t.Fatalf("expected next business day 2024-07-03, got %s", next.Format("2006-01-02"))
	}
}
