// Package logsheet derives per-day driver log data from a synthesized duty
// schedule: the four-row duty-status grid of the FMCSA paper log, implied
// off-duty fill, per-day clipping, and per-status hour totals. It produces
// the exact input shape a PDF renderer consumes; drawing itself lives in an
// external collaborator.
package logsheet

import (
	"sort"
	"time"

	"github.com/dmercer/haulplan/backend/internal/domain"
)

// DutyStatus is one of the four rows on a driver's daily log grid.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "Off Duty"
	StatusSleeperBerth DutyStatus = "Sleeper Berth"
	StatusDriving      DutyStatus = "Driving"
	StatusOnDuty       DutyStatus = "On Duty (Not Driving)"
)

// Statuses lists the grid rows in top-to-bottom paper-log order.
var Statuses = []DutyStatus{StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty}

// StatusFor maps a schedule segment kind to its duty-status row.
// The second return is false for kinds that do not appear on the grid.
func StatusFor(kind domain.SegmentKind) (DutyStatus, bool) {
	switch kind {
	case domain.SegmentDrive:
		return StatusDriving, true
	case domain.SegmentBreak, domain.SegmentRest, domain.SegmentOffDuty:
		return StatusOffDuty, true
	case domain.SegmentSleep:
		return StatusSleeperBerth, true
	case domain.SegmentOnDuty:
		return StatusOnDuty, true
	default:
		return "", false
	}
}

// Entry is one horizontal run on a day's grid: a single duty status held
// from StartTime to EndTime. Entries never cross midnight.
type Entry struct {
	Status    DutyStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
}

// Mark is a remark annotation under the grid: a label anchored at a
// fractional hour (0-24) within the day.
type Mark struct {
	Label string  `json:"label"`
	Hour  float64 `json:"hour"`
}

// DaySheet is the full data behind one calendar day's log form.
type DaySheet struct {
	// Date is midnight at the start of the day, in the schedule's location.
	Date time.Time `json:"date"`
	// Entries covers the full 24 hours contiguously, including implied
	// off-duty fill, in chronological order.
	Entries []Entry `json:"entries"`
	// Totals is the recap box: hours per duty status. Statuses with zero
	// hours are present with value 0 so renderers can print every row.
	Totals map[DutyStatus]float64 `json:"totals"`
	// Marks are the remark annotations (drive and rest starts).
	Marks []Mark `json:"marks"`
}

// BuildDaySheets converts a schedule's segments into one DaySheet per
// calendar day the schedule touches, in chronological order.
//
// Gaps are filled with implied off-duty time: before the first segment,
// between non-contiguous segments, and after the last segment to the end of
// its day. Segments spanning midnight are clipped to each day they touch.
// An empty segment list yields no sheets.
func BuildDaySheets(segments []domain.ScheduleSegment) []DaySheet {
	runs := statusRuns(segments)
	if len(runs) == 0 {
		return nil
	}

	gridStart := midnightBefore(runs[0].StartTime)
	gridEnd := midnightAfter(runs[len(runs)-1].EndTime)
	runs = fillOffDuty(runs, gridStart, gridEnd)

	var sheets []DaySheet
	for day := gridStart; day.Before(gridEnd); day = day.AddDate(0, 0, 1) {
		sheets = append(sheets, buildDay(day, runs, segments))
	}
	return sheets
}

// statusRuns maps segments onto grid statuses, dropping zero-length segments
// and kinds with no grid row, ordered by start time.
func statusRuns(segments []domain.ScheduleSegment) []Entry {
	runs := make([]Entry, 0, len(segments))
	for _, seg := range segments {
		status, ok := StatusFor(seg.Kind)
		if !ok || !seg.EndTime.After(seg.StartTime) {
			continue
		}
		runs = append(runs, Entry{Status: status, StartTime: seg.StartTime, EndTime: seg.EndTime})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].StartTime.Before(runs[j].StartTime) })
	return runs
}

// fillOffDuty inserts implied off-duty entries so the runs cover
// [gridStart, gridEnd) without gaps.
func fillOffDuty(runs []Entry, gridStart, gridEnd time.Time) []Entry {
	filled := make([]Entry, 0, len(runs)*2+2)
	cursor := gridStart
	for _, run := range runs {
		if run.StartTime.After(cursor) {
			filled = append(filled, Entry{Status: StatusOffDuty, StartTime: cursor, EndTime: run.StartTime})
		}
		filled = append(filled, run)
		if run.EndTime.After(cursor) {
			cursor = run.EndTime
		}
	}
	if gridEnd.After(cursor) {
		filled = append(filled, Entry{Status: StatusOffDuty, StartTime: cursor, EndTime: gridEnd})
	}
	return filled
}

// buildDay clips the filled runs to one calendar day and assembles the sheet.
func buildDay(day time.Time, runs []Entry, segments []domain.ScheduleSegment) DaySheet {
	dayEnd := day.AddDate(0, 0, 1)

	sheet := DaySheet{
		Date:   day,
		Totals: make(map[DutyStatus]float64, len(Statuses)),
	}
	for _, status := range Statuses {
		sheet.Totals[status] = 0
	}

	for _, run := range runs {
		start, end := clamp(run.StartTime, day, dayEnd), clamp(run.EndTime, day, dayEnd)
		if !end.After(start) {
			continue
		}
		sheet.Entries = append(sheet.Entries, Entry{Status: run.Status, StartTime: start, EndTime: end})
		sheet.Totals[run.Status] += end.Sub(start).Hours()
	}

	sheet.Marks = dayMarks(day, dayEnd, segments)
	return sheet
}

// dayMarks builds remark annotations for drive and rest/break starts that
// fall within the day.
func dayMarks(day, dayEnd time.Time, segments []domain.ScheduleSegment) []Mark {
	var marks []Mark
	for _, seg := range segments {
		if seg.StartTime.Before(day) || !seg.StartTime.Before(dayEnd) {
			continue
		}
		clock := seg.StartTime.Format("15:04")
		var label string
		switch seg.Kind {
		case domain.SegmentDrive:
			label = "Start Drive " + clock
		case domain.SegmentRest, domain.SegmentBreak:
			label = "Rest " + clock
		default:
			continue
		}
		marks = append(marks, Mark{Label: label, Hour: seg.StartTime.Sub(day).Hours()})
	}
	return marks
}

func midnightBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// midnightAfter returns the first midnight at or after t.
func midnightAfter(t time.Time) time.Time {
	floor := midnightBefore(t)
	if t.Equal(floor) {
		return floor
	}
	return floor.AddDate(0, 0, 1)
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}
