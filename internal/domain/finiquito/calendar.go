package finiquito

import "time"

// IsBusinessDay reports whether t falls Monday through Friday.
// Public holidays are not considered.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay returns the first business day strictly after t.
func NextBusinessDay(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for !IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// NonBusinessRun walks forward one day at a time from t (exclusive) until a
// business day is reached, returning how many non-business days were skipped
// and the business day that ended the run.
func NonBusinessRun(t time.Time) (int, time.Time) {
	count := 0
	cur := t.AddDate(0, 0, 1)
	for !IsBusinessDay(cur) {
		count++
		cur = cur.AddDate(0, 0, 1)
	}
	return count, cur
}
