package service

import (
	"context"
	"fmt"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/hos"
)

// PlanService is the validated boundary in front of the pure HOS rule engine.
// It rejects malformed calculation requests so the engine — which by design
// never errors — only ever sees well-formed numbers and intervals.
type PlanService struct {
	limits hos.Limits
}

// NewPlanService constructs a PlanService evaluating against the given limits.
func NewPlanService(limits hos.Limits) *PlanService {
	return &PlanService{limits: limits}
}

// Plan validates the request and synthesizes the full duty schedule.
// Returns domain.ErrValidation for out-of-bound fields; never touches storage.
func (s *PlanService) Plan(_ context.Context, req hos.PlanRequest) (domain.Schedule, error) {
	if err := validatePlanRequest(req); err != nil {
		return domain.Schedule{}, err
	}
	return hos.PlanSchedule(s.limits, req), nil
}

// validatePlanRequest enforces the calculation request contract.
// Prior drive intervals must be individually well-formed and mutually
// non-overlapping in ascending order; the engine assumes as much and its
// behavior on malformed intervals is undefined.
func validatePlanRequest(req hos.PlanRequest) error {
	if req.Origin == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrValidation)
	}
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if req.EstimatedDurationHours <= 0 {
		return fmt.Errorf("%w: estimated_duration must be positive", domain.ErrValidation)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if req.CurrentCycleUsed < 0 || req.CurrentCycleUsed > cycleHoursMax {
		return fmt.Errorf("%w: current_cycle_used must be between 0 and %d", domain.ErrValidation, cycleHoursMax)
	}
	for i, iv := range req.PreviousDrives {
		if iv.StartTime.IsZero() || iv.EndTime.IsZero() {
			return fmt.Errorf("%w: previous_drives[%d] must have start_time and end_time", domain.ErrValidation, i)
		}
		if iv.EndTime.Before(iv.StartTime) {
			return fmt.Errorf("%w: previous_drives[%d] end_time must not be before start_time", domain.ErrValidation, i)
		}
		if i > 0 && req.PreviousDrives[i-1].EndTime.After(iv.StartTime) {
			return fmt.Errorf("%w: previous_drives must be ordered and non-overlapping", domain.ErrValidation)
		}
	}
	return nil
}
