// Package daycount converts calendar date intervals into year fractions
// for pricing purposes.
//
// Dates are plain time.Time values; only the year, month and day fields
// matter, so callers should pass midnight values in a single location
// (UTC is conventional).
package daycount

import "time"

// YearFraction returns the elapsed time between two dates expressed in
// years. Argument order does not matter.
//
// Whole years are counted with true calendar arithmetic (same month and
// day, next year), so leap years are handled exactly for the whole-year
// portion. The remaining partial year is the leftover day count divided
// by a fixed 365, regardless of whether a leap day falls inside it.
// Downstream pricing vectors depend on that fixed divisor; do not change
// it to 365.25 or a leap-aware count.
//
//	YearFraction(date(1959,5,3), date(1960,5,3))  == 1.0
//	YearFraction(date(2004,1,1), date(2005,1,2))  == 1.0027397260273974
func YearFraction(a, b time.Time) float64 {
	if a.After(b) {
		a, b = b, a
	}

	years := 0.0
	next := oneYearLater(a)
	for !next.After(b) {
		a = next
		years++
		next = oneYearLater(a)
	}

	remainingDays := b.Sub(a).Hours() / 24
	return years + remainingDays/365
}

func oneYearLater(d time.Time) time.Time {
	return time.Date(d.Year()+1, d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
