package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmercer/haulplan/backend/internal/domain"
)

// tripRequest is the JSON body for POST /trips and PUT /trips/{id}.
type tripRequest struct {
	CurrentLocation  string `json:"current_location"`
	PickupLocation   string `json:"pickup_location"`
	DropoffLocation  string `json:"dropoff_location"`
	CurrentCycleUsed int    `json:"current_cycle_used"`
	ShippingNumber   string `json:"shipping_number"`
}

// tripListResponse is the paginated body for GET /trips.
type tripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, r, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page")
	if err != nil {
		badRequest(w, r, "page must be an integer")
		return
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		badRequest(w, r, "limit must be an integer")
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripListResponse{
		Data: trips,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, "trip not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req tripRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, r, err.Error())
		return
	}

	updated, err := s.trips.Update(r.Context(), req.toDomain(id))
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

	writeJSON(w, r, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, "trip not found")
			return
		}
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request plumbing -------------------------------------------------------

func (req tripRequest) toDomain(id uuid.UUID) domain.Trip {
	return domain.Trip{
		ID:               id,
		CurrentLocation:  req.CurrentLocation,
		PickupLocation:   req.PickupLocation,
		DropoffLocation:  req.DropoffLocation,
		CurrentCycleUsed: req.CurrentCycleUsed,
		ShippingNumber:   req.ShippingNumber,
	}
}

// decodeBody strictly decodes the request body into v.
// Unknown fields and trailing data are rejected.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body: " + err.Error())
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// tripID parses the {id} path parameter, writing a 400 on failure.
func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, r, "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// intQuery parses an optional integer query parameter, nil when absent.
func intQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
