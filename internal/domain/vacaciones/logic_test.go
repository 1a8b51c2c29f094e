package vacaciones

import (
	"math"
	"testing"
	"time"
)

func TestProject(t *testing.T) {
	cutoff := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// One commercial month ahead accrues 1.25 days.
	got := Project(10, cutoff, cutoff.AddDate(0, 0, 30))
	if math.Abs(got-11.25) > 1e-9 {
		t.Fatalf("expected 11.25, got %v", got)
	}

	// Projection date at or before cutoff changes nothing.
	if got := Project(10, cutoff, cutoff); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := Project(10, cutoff, cutoff.AddDate(0, 0, -5)); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}

	// Zero cutoff means the balance is already current.
	if got := Project(10, time.Time{}, cutoff); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}
