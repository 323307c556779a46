package logsheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/hos"
	"github.com/dmercer/haulplan/backend/internal/logsheet"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func seg(kind domain.SegmentKind, fromHour, toHour float64) domain.ScheduleSegment {
	return domain.ScheduleSegment{
		Kind:          kind,
		StartTime:     day.Add(time.Duration(fromHour * float64(time.Hour))),
		EndTime:       day.Add(time.Duration(toHour * float64(time.Hour))),
		DurationHours: toHour - fromHour,
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[domain.SegmentKind]logsheet.DutyStatus{
		domain.SegmentDrive:   logsheet.StatusDriving,
		domain.SegmentBreak:   logsheet.StatusOffDuty,
		domain.SegmentRest:    logsheet.StatusOffDuty,
		domain.SegmentOffDuty: logsheet.StatusOffDuty,
		domain.SegmentSleep:   logsheet.StatusSleeperBerth,
		domain.SegmentOnDuty:  logsheet.StatusOnDuty,
	}
	for kind, want := range cases {
		got, ok := logsheet.StatusFor(kind)
		require.True(t, ok, "kind %s should map to a grid row", kind)
		assert.Equal(t, want, got)
	}

	_, ok := logsheet.StatusFor(domain.SegmentKind("unknown"))
	assert.False(t, ok)
}

func TestBuildDaySheets_Empty(t *testing.T) {
	assert.Nil(t, logsheet.BuildDaySheets(nil))
}

func TestBuildDaySheets_SingleDayFillsOffDuty(t *testing.T) {
	segments := []domain.ScheduleSegment{
		seg(domain.SegmentDrive, 8, 16),
		seg(domain.SegmentBreak, 16, 16.5),
	}

	sheets := logsheet.BuildDaySheets(segments)

	require.Len(t, sheets, 1)
	sheet := sheets[0]
	assert.True(t, sheet.Date.Equal(day))

	// Implied off duty before 08:00, after 16:30, and nothing in between.
	require.Len(t, sheet.Entries, 4)
	assert.Equal(t, logsheet.StatusOffDuty, sheet.Entries[0].Status)
	assert.True(t, sheet.Entries[0].StartTime.Equal(day))
	assert.Equal(t, logsheet.StatusDriving, sheet.Entries[1].Status)
	assert.Equal(t, logsheet.StatusOffDuty, sheet.Entries[2].Status)
	assert.Equal(t, logsheet.StatusOffDuty, sheet.Entries[3].Status)
	assert.True(t, sheet.Entries[3].EndTime.Equal(day.AddDate(0, 0, 1)))

	// Entries are contiguous over the full 24 hours.
	for i := 1; i < len(sheet.Entries); i++ {
		assert.True(t, sheet.Entries[i-1].EndTime.Equal(sheet.Entries[i].StartTime))
	}

	assert.InDelta(t, 8.0, sheet.Totals[logsheet.StatusDriving], 1e-9)
	assert.InDelta(t, 16.0, sheet.Totals[logsheet.StatusOffDuty], 1e-9)
	assert.Zero(t, sheet.Totals[logsheet.StatusSleeperBerth])
	assert.Zero(t, sheet.Totals[logsheet.StatusOnDuty])
}

func TestBuildDaySheets_GapBetweenSegmentsBecomesOffDuty(t *testing.T) {
	segments := []domain.ScheduleSegment{
		seg(domain.SegmentDrive, 6, 9),
		seg(domain.SegmentDrive, 12, 14), // 3h unaccounted gap before this
	}

	sheets := logsheet.BuildDaySheets(segments)

	require.Len(t, sheets, 1)
	var gap *logsheet.Entry
	for i, e := range sheets[0].Entries {
		if e.Status == logsheet.StatusOffDuty && e.StartTime.Equal(day.Add(9*time.Hour)) {
			gap = &sheets[0].Entries[i]
		}
	}
	require.NotNil(t, gap, "gap between drives must become implied off duty")
	assert.True(t, gap.EndTime.Equal(day.Add(12*time.Hour)))
}

func TestBuildDaySheets_MidnightSpanningSegmentIsClipped(t *testing.T) {
	segments := []domain.ScheduleSegment{
		seg(domain.SegmentDrive, 20, 28), // 20:00 to 04:00 next day
	}

	sheets := logsheet.BuildDaySheets(segments)

	require.Len(t, sheets, 2)

	assert.InDelta(t, 4.0, sheets[0].Totals[logsheet.StatusDriving], 1e-9)
	assert.InDelta(t, 4.0, sheets[1].Totals[logsheet.StatusDriving], 1e-9)

	// The clipped halves meet exactly at midnight.
	d0Last := sheets[0].Entries[len(sheets[0].Entries)-1]
	d1First := sheets[1].Entries[0]
	assert.True(t, d0Last.EndTime.Equal(sheets[1].Date))
	assert.True(t, d1First.StartTime.Equal(sheets[1].Date))

	// Each day's totals cover exactly 24 hours.
	for _, sheet := range sheets {
		var total float64
		for _, h := range sheet.Totals {
			total += h
		}
		assert.InDelta(t, 24.0, total, 1e-9)
	}
}

func TestBuildDaySheets_Marks(t *testing.T) {
	segments := []domain.ScheduleSegment{
		seg(domain.SegmentDrive, 8, 16),
		seg(domain.SegmentRest, 16, 26),
	}

	sheets := logsheet.BuildDaySheets(segments)

	require.Len(t, sheets, 2)
	require.Len(t, sheets[0].Marks, 2)
	assert.Equal(t, "Start Drive 08:00", sheets[0].Marks[0].Label)
	assert.InDelta(t, 8.0, sheets[0].Marks[0].Hour, 1e-9)
	assert.Equal(t, "Rest 16:00", sheets[0].Marks[1].Label)
	assert.Empty(t, sheets[1].Marks, "rest started the previous day; no mark on day two")
}

func TestBuildDaySheets_FromSynthesizedSchedule(t *testing.T) {
	// End-to-end: a 10-hour planned trip produces one fully covered sheet.
	s := hos.PlanSchedule(hos.DefaultLimits(), hos.PlanRequest{
		Origin:                 "Chicago, IL",
		Destination:            "Dallas, TX",
		EstimatedDurationHours: 10,
		StartTime:              day.Add(8 * time.Hour),
	})

	sheets := logsheet.BuildDaySheets(s.Segments)

	require.Len(t, sheets, 1)
	sheet := sheets[0]
	assert.InDelta(t, 10.0, sheet.Totals[logsheet.StatusDriving], 1e-9)
	assert.InDelta(t, 14.0, sheet.Totals[logsheet.StatusOffDuty], 1e-9)
}
