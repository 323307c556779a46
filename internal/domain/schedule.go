package domain

import "time"

// SegmentKind classifies one segment of a synthesized duty schedule.
type SegmentKind string

const (
	SegmentDrive   SegmentKind = "drive"
	SegmentBreak   SegmentKind = "break"
	SegmentRest    SegmentKind = "rest"
	SegmentSleep   SegmentKind = "sleep"
	SegmentOnDuty  SegmentKind = "on_duty"
	SegmentOffDuty SegmentKind = "off_duty"
)

// DriveInterval is a prior driving period within the current duty period.
// Callers must supply intervals that are non-overlapping; the rule engine
// sorts by start time but performs no further validation.
type DriveInterval struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Hours returns the interval length in fractional hours.
func (d DriveInterval) Hours() float64 {
	return d.EndTime.Sub(d.StartTime).Hours()
}

// RemainingEnvelope is the derived legal allowance before a trip starts,
// one value per regulatory limit. Each value is clamped to >= 0.
type RemainingEnvelope struct {
	RemainingCycleHours      float64 `json:"remaining_cycle_hours"`
	RemainingDrivingHours    float64 `json:"remaining_driving_hours"`
	RemainingDutyWindowHours float64 `json:"remaining_duty_window_hours"`
}

// Break is a mandated 30-minute rest break injected after 8 cumulative
// driving hours. Generated per calculation, never persisted.
type Break struct {
	BreakType string    `json:"break_type"`
	Reason    string    `json:"reason"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// RestPeriod is a mandated 10-hour off-duty rest triggered by exhausting the
// driving limit or the duty window. Generated per calculation, never persisted.
type RestPeriod struct {
	RestType  string    `json:"rest_type"`
	Reason    string    `json:"reason"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ScheduleSegment is one contiguous span of the output timeline.
// Drive segments carry start/end locations; break, rest, and off-duty
// segments carry a single location and the mandating reason.
type ScheduleSegment struct {
	Kind          SegmentKind `json:"type"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	DurationHours float64     `json:"duration_hours"`

	StartLocation string `json:"start_location,omitempty"`
	EndLocation   string `json:"end_location,omitempty"`
	Location      string `json:"location,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// ComplianceResult is the full output of the rule engine for one proposed trip.
type ComplianceResult struct {
	TripStartTime       time.Time         `json:"trip_start_time"`
	TripEndTime         time.Time         `json:"trip_end_time"`
	TripDurationHours   float64           `json:"trip_duration_hours"`
	CycleCompliant      bool              `json:"cycle_compliant"`
	DrivingCompliant    bool              `json:"driving_compliant"`
	DutyWindowCompliant bool              `json:"duty_window_compliant"`
	RequiredBreaks      []Break           `json:"required_breaks"`
	RequiredRestPeriods []RestPeriod      `json:"required_rest_periods"`
	CurrentCycleHours   float64           `json:"current_cycle_hours"`
	UpdatedCycleHours   float64           `json:"updated_cycle_hours"`
	RemainingBeforeTrip RemainingEnvelope `json:"remaining_before_trip"`
}

// Schedule is the synthesized duty timeline for a trip: an ordered, gap-free
// sequence of segments plus the compliance data it was built from.
// EndTime includes interruption time, so it may exceed StartTime plus the
// pure driving duration.
type Schedule struct {
	Origin             string            `json:"origin"`
	Destination        string            `json:"destination"`
	TotalDurationHours float64           `json:"total_duration_hours"`
	StartTime          time.Time         `json:"start_time"`
	EndTime            time.Time         `json:"end_time"`
	Segments           []ScheduleSegment `json:"schedule"`
	HOS                ComplianceResult  `json:"hos_data"`
}
