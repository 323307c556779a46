package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/hos"
)

// calculateRequest is the JSON body for POST /hos/calculate.
// start_time and the previous-drive timestamps are RFC 3339.
type calculateRequest struct {
	Origin                 string                 `json:"origin"`
	Destination            string                 `json:"destination"`
	EstimatedDurationHours float64                `json:"estimated_duration_hours"`
	StartTime              time.Time              `json:"start_time"`
	CurrentCycleUsed       float64                `json:"current_cycle_used"`
	PreviousDrives         []domain.DriveInterval `json:"previous_drives,omitempty"`
}

// CalculateSchedule handles POST /hos/calculate.
// It validates the request through the plan service and responds with the
// synthesized schedule plus its compliance data. No persistence is involved.
func (s *Server) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	schedule, err := s.planner.Plan(r.Context(), hos.PlanRequest{
		Origin:                 req.Origin,
		Destination:            req.Destination,
		EstimatedDurationHours: req.EstimatedDurationHours,
		StartTime:              req.StartTime,
		CurrentCycleUsed:       req.CurrentCycleUsed,
		PreviousDrives:         req.PreviousDrives,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, r, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, schedule)
}
