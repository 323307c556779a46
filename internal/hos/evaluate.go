package hos

import (
	"math"
	"sort"
	"time"

	"github.com/dmercer/haulplan/backend/internal/domain"
)

// Interruption type and reason strings, as they appear on driver-facing logs.
const (
	breakType         = "30-minute rest break"
	breakReason       = "8-hour driving limit reached"
	restType          = "10-hour off-duty rest"
	drivingRestReason = "11-hour driving limit reached"
	windowRestReason  = "14-hour on-duty window limit reached"
)

// Remaining computes the legal allowance left in each of the three envelopes
// before a proposed trip starts.
//
// With no prior intervals the duty period is assumed fresh: full driving and
// duty-window allowances. With prior intervals, the duty period starts at the
// earliest interval start, driving used is the sum of interval lengths, and
// the window elapsed runs to the latest interval end. All results clamp to 0.
func Remaining(lim Limits, cycleUsed float64, prior []domain.DriveInterval) domain.RemainingEnvelope {
	env := domain.RemainingEnvelope{
		RemainingCycleHours:      math.Max(0, lim.CycleHoursLimit-cycleUsed),
		RemainingDrivingHours:    lim.MaxDrivingHours,
		RemainingDutyWindowHours: lim.MaxDutyWindowHours,
	}
	if len(prior) == 0 {
		return env
	}

	drives := sortedByStart(prior)
	drivingUsed := totalDrivingHours(drives)
	windowElapsed := drives[len(drives)-1].EndTime.Sub(drives[0].StartTime).Hours()

	env.RemainingDrivingHours = math.Max(0, lim.MaxDrivingHours-drivingUsed)
	env.RemainingDutyWindowHours = math.Max(0, lim.MaxDutyWindowHours-windowElapsed)
	return env
}

// RequiredBreaks returns the 30-minute breaks a trip of durationHours starting
// at start must take, in chronological order.
//
// The first break lands when cumulative driving reaches the next multiple of
// the 8-hour threshold. Note the modulo: accrued driving that is an exact
// multiple of 8 — including zero — yields a full fresh 8-hour allowance. For a
// driver arriving with exactly 8 accrued hours that grants 8 more before the
// first break, which mirrors the regulation text loosely at best; the behavior
// is kept as-is rather than silently corrected.
func RequiredBreaks(lim Limits, start time.Time, durationHours float64, prior []domain.DriveInterval) []domain.Break {
	accrued := totalDrivingHours(sortedByStart(prior))
	untilBreak := lim.BreakAfterDrivingHours - math.Mod(accrued, lim.BreakAfterDrivingHours)

	breaks := []domain.Break{}
	cursor := start
	remaining := durationHours

	for remaining > untilBreak {
		breakStart := cursor.Add(hours(untilBreak))
		breakEnd := breakStart.Add(lim.BreakDuration)
		breaks = append(breaks, domain.Break{
			BreakType: breakType,
			Reason:    breakReason,
			StartTime: breakStart,
			EndTime:   breakEnd,
		})

		cursor = breakEnd
		remaining -= untilBreak
		untilBreak = lim.BreakAfterDrivingHours
	}

	return breaks
}

// EnforceLimits evaluates a proposed trip against all three envelopes and
// returns the full compliance verdict, mandated breaks, and mandated rests.
//
// Compliance is strict non-exceedance: a duration exactly equal to the
// remaining allowance is compliant. When the driving limit and the duty
// window are both exceeded, two independent rest periods are emitted even if
// their windows overlap in time — they are intentionally not merged, matching
// the behavior log auditors have come to expect from this calculator.
// UpdatedCycleHours is uncapped and may exceed the 70-hour limit; rejecting
// or restarting is the caller's call.
func EnforceLimits(lim Limits, start time.Time, durationHours, cycleUsed float64, prior []domain.DriveInterval) domain.ComplianceResult {
	remaining := Remaining(lim, cycleUsed, prior)

	result := domain.ComplianceResult{
		TripStartTime:       start,
		TripEndTime:         start.Add(hours(durationHours)),
		TripDurationHours:   durationHours,
		CycleCompliant:      durationHours <= remaining.RemainingCycleHours,
		DrivingCompliant:    durationHours <= remaining.RemainingDrivingHours,
		DutyWindowCompliant: durationHours <= remaining.RemainingDutyWindowHours,
		RequiredBreaks:      RequiredBreaks(lim, start, durationHours, prior),
		RequiredRestPeriods: []domain.RestPeriod{},
		CurrentCycleHours:   cycleUsed,
		UpdatedCycleHours:   cycleUsed + durationHours,
		RemainingBeforeTrip: remaining,
	}

	if !result.DrivingCompliant {
		restStart := start.Add(hours(remaining.RemainingDrivingHours))
		result.RequiredRestPeriods = append(result.RequiredRestPeriods, domain.RestPeriod{
			RestType:  restType,
			Reason:    drivingRestReason,
			StartTime: restStart,
			EndTime:   restStart.Add(lim.RestDuration),
		})
	}

	if !result.DutyWindowCompliant {
		restStart := start.Add(hours(remaining.RemainingDutyWindowHours))
		result.RequiredRestPeriods = append(result.RequiredRestPeriods, domain.RestPeriod{
			RestType:  restType,
			Reason:    windowRestReason,
			StartTime: restStart,
			EndTime:   restStart.Add(lim.RestDuration),
		})
	}

	return result
}

// sortedByStart returns a copy of intervals ordered by start time.
// The input slice is never mutated.
func sortedByStart(intervals []domain.DriveInterval) []domain.DriveInterval {
	out := make([]domain.DriveInterval, len(intervals))
	copy(out, intervals)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// totalDrivingHours sums the lengths of all intervals in fractional hours.
func totalDrivingHours(intervals []domain.DriveInterval) float64 {
	var total float64
	for _, iv := range intervals {
		total += iv.Hours()
	}
	return total
}
