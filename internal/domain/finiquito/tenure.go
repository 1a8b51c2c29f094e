package finiquito

import (
	"math"
	"time"
)

// YearsOfService returns continuous service duration in years. The last
// working day counts as a served day, so the day count is inclusive.
func YearsOfService(hireDate, lastWorkDay time.Time) float64 {
	if lastWorkDay.Before(hireDate) {
		return 0
	}
	days := lastWorkDay.Sub(hireDate).Hours()/24 + 1
	return days / daysPerYear
}

// IndemnityYears applies the legal rounding policy for the years-of-service
// indemnity:
//   - under one year there is no entitlement;
//   - between one year and one and a half the real duration is used;
//   - from one and a half years on, a remainder of half a year or more
//     counts as a full extra year.
func IndemnityYears(years float64) float64 {
	if years < 1 {
		return 0
	}
	if years < 1.5 {
		return years
	}
	full := math.Floor(years)
	if years-full >= 0.5 {
		return full + 1
	}
	return full
}
