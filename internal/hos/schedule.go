package hos

import (
	"time"

	"github.com/dmercer/haulplan/backend/internal/domain"
)

// Location placeholders for points the planner cannot geocode. Real rest-area
// lookup is out of scope; locations are opaque labels throughout.
const (
	enRouteLocation = "En route"
	breakLocation   = "Break location"
	restLocation    = "Unknown rest location"
)

// PlanRequest carries the inputs for one schedule calculation.
type PlanRequest struct {
	Origin                 string
	Destination            string
	EstimatedDurationHours float64
	StartTime              time.Time
	CurrentCycleUsed       float64
	PreviousDrives         []domain.DriveInterval
}

// synthState is the synthesizer's position in its per-iteration scan.
// Every iteration starts at scanningRest: a rest window containing the cursor
// always wins over a pending break.
type synthState int

const (
	scanningRest synthState = iota
	scanningBreak
	finalDrive
)

// PlanSchedule synthesizes the full duty timeline for a trip: drive segments
// interleaved with every mandated break and rest, contiguous and in
// chronological order. The first segment starts at the trip start; the
// resulting EndTime is the start plus driving duration plus all interruption
// time, so interruptions stretch the wall-clock trip length.
//
// The walk is a single forward cursor over remaining driving hours:
//
//	scanningRest  — cursor inside a mandated rest window? emit the whole rest.
//	scanningBreak — a break starts strictly within the hours left? emit the
//	                drive up to it, then the break.
//	finalDrive    — nothing else applies; emit one drive for whatever is left.
func PlanSchedule(lim Limits, req PlanRequest) domain.Schedule {
	hosData := EnforceLimits(lim, req.StartTime, req.EstimatedDurationHours, req.CurrentCycleUsed, req.PreviousDrives)

	segments := []domain.ScheduleSegment{}
	cursor := req.StartTime
	remaining := req.EstimatedDurationHours
	state := scanningRest

	for remaining > 0 {
		switch state {
		case scanningRest:
			if rest, ok := restContaining(hosData.RequiredRestPeriods, cursor); ok {
				segments = append(segments, domain.ScheduleSegment{
					Kind:          domain.SegmentRest,
					StartTime:     rest.StartTime,
					EndTime:       rest.EndTime,
					DurationHours: rest.EndTime.Sub(rest.StartTime).Hours(),
					Location:      restLocation,
					Reason:        rest.Reason,
				})
				cursor = rest.EndTime
				continue
			}
			state = scanningBreak

		case scanningBreak:
			br, ok := nextBreakWithin(hosData.RequiredBreaks, cursor, remaining)
			if !ok {
				state = finalDrive
				continue
			}
			driveHours := br.StartTime.Sub(cursor).Hours()
			segments = append(segments, domain.ScheduleSegment{
				Kind:          domain.SegmentDrive,
				StartTime:     cursor,
				EndTime:       br.StartTime,
				DurationHours: driveHours,
				StartLocation: driveStartLocation(req.Origin, segments),
				EndLocation:   breakLocation,
			})
			segments = append(segments, domain.ScheduleSegment{
				Kind:          domain.SegmentBreak,
				StartTime:     br.StartTime,
				EndTime:       br.EndTime,
				DurationHours: br.EndTime.Sub(br.StartTime).Hours(),
				Location:      breakLocation,
				Reason:        br.Reason,
			})
			cursor = br.EndTime
			remaining -= driveHours
			state = scanningRest

		case finalDrive:
			end := cursor.Add(hours(remaining))
			segments = append(segments, domain.ScheduleSegment{
				Kind:          domain.SegmentDrive,
				StartTime:     cursor,
				EndTime:       end,
				DurationHours: remaining,
				StartLocation: driveStartLocation(req.Origin, segments),
				EndLocation:   req.Destination,
			})
			remaining = 0
		}
	}

	return domain.Schedule{
		Origin:             req.Origin,
		Destination:        req.Destination,
		TotalDurationHours: req.EstimatedDurationHours,
		StartTime:          req.StartTime,
		EndTime:            req.StartTime.Add(hours(req.EstimatedDurationHours + interruptionHours(segments))),
		Segments:           segments,
		HOS:                hosData,
	}
}

// restContaining returns the first rest whose window contains the cursor
// (start inclusive, end exclusive).
func restContaining(rests []domain.RestPeriod, cursor time.Time) (domain.RestPeriod, bool) {
	for _, rest := range rests {
		if !cursor.Before(rest.StartTime) && cursor.Before(rest.EndTime) {
			return rest, true
		}
	}
	return domain.RestPeriod{}, false
}

// nextBreakWithin returns the first break starting strictly between the cursor
// and cursor + remaining driving hours.
func nextBreakWithin(breaks []domain.Break, cursor time.Time, remainingHours float64) (domain.Break, bool) {
	horizon := cursor.Add(hours(remainingHours))
	for _, br := range breaks {
		if cursor.Before(br.StartTime) && horizon.After(br.StartTime) {
			return br, true
		}
	}
	return domain.Break{}, false
}

// driveStartLocation labels the first drive segment with the trip origin and
// every later one with the en-route marker.
func driveStartLocation(origin string, segments []domain.ScheduleSegment) string {
	if len(segments) == 0 {
		return origin
	}
	return enRouteLocation
}

// interruptionHours sums the durations of all non-drive segments.
func interruptionHours(segments []domain.ScheduleSegment) float64 {
	var total float64
	for _, seg := range segments {
		if seg.Kind != domain.SegmentDrive {
			total += seg.DurationHours
		}
	}
	return total
}
