package vacaciones

import "time"

// MonthlyAccrual is the statutory vacation accrual: 15 business days per
// worked year, credited as 1.25 days per month.
const MonthlyAccrual = 1.25

// Project extends a balance from its accrual cutoff to a projection date at
// the statutory monthly rate. Dates before the cutoff leave the balance
// unchanged.
func Project(days float64, cutoff, to time.Time) float64 {
	if cutoff.IsZero() || !to.After(cutoff) {
		return days
	}
	elapsed := to.Sub(cutoff).Hours() / 24
	return days + MonthlyAccrual*(elapsed/30)
}
