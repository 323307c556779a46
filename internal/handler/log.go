package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmercer/haulplan/backend/internal/domain"
)

// GetTripLogs handles GET /trips/{id}/logs.
// Optional query parameters: duration_hours (float, default 8) and
// start_time (RFC 3339, default 08:00 today). Responds with the trip, its
// synthesized schedule, and one duty sheet per calendar day touched.
func (s *Server) GetTripLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var durationHours float64
	if raw := r.URL.Query().Get("duration_hours"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(w, r, "duration_hours must be a number")
			return
		}
		durationHours = v
	}

	var start time.Time
	if raw := r.URL.Query().Get("start_time"); raw != "" {
		v, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(w, r, "start_time must be an RFC 3339 timestamp")
			return
		}
		start = v
	}

	log, err := s.logs.BuildForTrip(r.Context(), id, durationHours, start)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, r, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, log)
}
