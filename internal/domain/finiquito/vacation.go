package finiquito

import (
	"math"
	"time"
)

// VacationSpan converts pending vacation days into the calendar-day span the
// payout must cover. Pending days are counted as business days starting the
// day after the last working day; weekends inside the period widen the span,
// and a fractional remainder above the spillover threshold extends it across
// a weekend adjacent to the final business day.
func VacationSpan(lastWorkDay time.Time, availableDays float64) float64 {
	if availableDays <= 0 {
		return 0
	}

	whole := int(availableDays)
	fraction := availableDays - float64(whole)
	if whole == 0 {
		return fraction
	}

	leading, firstBusiness := NonBusinessRun(lastWorkDay)

	// Advance until `whole` business days have been consumed.
	lastBusiness := firstBusiness
	counted := 1
	cur := firstBusiness
	for counted < whole {
		cur = cur.AddDate(0, 0, 1)
		if IsBusinessDay(cur) {
			counted++
			lastBusiness = cur
		}
	}

	coreSpan := int(lastBusiness.Sub(firstBusiness).Hours()/24) + 1

	trailing := 0
	if fraction > spilloverThreshold {
		dayAfter := lastBusiness.AddDate(0, 0, 1)
		if lastBusiness.Weekday() == time.Friday || !IsBusinessDay(dayAfter) {
			trailing, _ = NonBusinessRun(lastBusiness)
		}
	}

	return float64(leading+coreSpan+trailing) + fraction
}

// VacationAmount values a calendar-day span at the daily rate derived from
// the monthly base salary plus the variable-bonus average.
func VacationAmount(baseSalary, bonusAverage, spanDays float64) float64 {
	return math.Round((baseSalary + bonusAverage) / 30 * spanDays)
}
