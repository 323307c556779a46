package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/hos"
	"github.com/dmercer/haulplan/backend/internal/logsheet"
	"github.com/dmercer/haulplan/backend/internal/repo"
)

// Defaults applied when a log is requested without explicit trip parameters:
// an 8-hour haul starting at 08:00 on the current day.
const (
	defaultLogDurationHours = 8.0
	defaultLogStartHour     = 8
)

// DriverLog bundles everything a log renderer needs for one trip: the stored
// trip record, the synthesized schedule, and the per-day duty grids.
type DriverLog struct {
	Trip     domain.Trip         `json:"trip"`
	Schedule domain.Schedule     `json:"schedule"`
	Sheets   []logsheet.DaySheet `json:"sheets"`
}

// LogService derives driver daily logs from stored trips.
type LogService struct {
	trips  repo.TripRepo
	limits hos.Limits
	// now is swappable for tests; production uses time.Now.
	now func() time.Time
}

// NewLogService constructs a LogService backed by the provided TripRepo.
func NewLogService(trips repo.TripRepo, limits hos.Limits) *LogService {
	return &LogService{trips: trips, limits: limits, now: time.Now}
}

// BuildForTrip loads a trip, plans its pickup-to-dropoff schedule, and
// returns the daily log sheets. A zero durationHours falls back to the
// 8-hour default; a zero start falls back to 08:00 today. A negative
// duration is rejected with domain.ErrValidation; a missing trip surfaces
// domain.ErrNotFound.
func (s *LogService) BuildForTrip(ctx context.Context, tripID uuid.UUID, durationHours float64, start time.Time) (DriverLog, error) {
	if durationHours < 0 {
		return DriverLog{}, fmt.Errorf("%w: duration_hours must be positive", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return DriverLog{}, fmt.Errorf("service.LogService.BuildForTrip: %w", err)
	}

	if durationHours == 0 {
		durationHours = defaultLogDurationHours
	}
	if start.IsZero() {
		now := s.now()
		start = time.Date(now.Year(), now.Month(), now.Day(), defaultLogStartHour, 0, 0, 0, now.Location())
	}

	schedule := hos.PlanSchedule(s.limits, hos.PlanRequest{
		Origin:                 trip.PickupLocation,
		Destination:            trip.DropoffLocation,
		EstimatedDurationHours: durationHours,
		StartTime:              start,
		CurrentCycleUsed:       float64(trip.CurrentCycleUsed),
	})

	return DriverLog{
		Trip:     trip,
		Schedule: schedule,
		Sheets:   logsheet.BuildDaySheets(schedule.Segments),
	}, nil
}
