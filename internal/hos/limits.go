// Package hos implements the FMCSA Hours-of-Service rule engine and the duty
// schedule synthesizer. Everything in this package is pure: no I/O, no clock
// reads, no shared state — identical inputs always produce identical output.
//
// Boundary validation is deliberately NOT done here. Out-of-range cycle hours
// or a negative duration produce mathematically derived (possibly nonsensical)
// results rather than an error; rejecting bad input is the service layer's job.
package hos

import "time"

// Limits is the immutable set of regulatory constants the engine evaluates
// against. Construct with DefaultLimits; there is no hidden shared state.
type Limits struct {
	// MaxDrivingHours is the driving allowance per duty period (11h).
	MaxDrivingHours float64
	// MaxDutyWindowHours is the on-duty window per duty period (14h).
	MaxDutyWindowHours float64
	// BreakAfterDrivingHours is cumulative driving before a break is due (8h).
	BreakAfterDrivingHours float64
	// BreakDuration is the length of a mandated rest break (30m).
	BreakDuration time.Duration
	// RestDuration is the length of a mandated off-duty rest (10h).
	RestDuration time.Duration
	// CycleHoursLimit is the rolling duty-hour cap (70h).
	CycleHoursLimit float64
	// CycleDays is the rolling window the cycle cap applies over (8 days).
	CycleDays int
}

// DefaultLimits returns the FMCSA property-carrying limits for carriers
// operating every day of the week.
func DefaultLimits() Limits {
	return Limits{
		MaxDrivingHours:        11,
		MaxDutyWindowHours:     14,
		BreakAfterDrivingHours: 8,
		BreakDuration:          30 * time.Minute,
		RestDuration:           10 * time.Hour,
		CycleHoursLimit:        70,
		CycleDays:              8,
	}
}

// hours converts a fractional hour count to a time.Duration.
func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
