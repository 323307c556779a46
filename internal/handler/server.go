// Package handler implements the HTTP handlers for the HaulPlan API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, plan.go, log.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/hos"
	"github.com/dmercer/haulplan/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Planner defines the schedule calculation operation the plan handler depends on.
type Planner interface {
	Plan(ctx context.Context, req hos.PlanRequest) (domain.Schedule, error)
}

// LogServicer defines the daily-log derivation the log handler depends on.
type LogServicer interface {
	BuildForTrip(ctx context.Context, tripID uuid.UUID, durationHours float64, start time.Time) (service.DriverLog, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips   TripServicer
	planner Planner
	logs    LogServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, planner Planner, logs LogServicer) *Server {
	return &Server{trips: trips, planner: planner, logs: logs}
}

// Routes returns the API route tree. Cross-cutting middleware (logging, CORS,
// body limits, metrics) is attached by the caller; only routing lives here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/logs", s.GetTripLogs)
		})
	})

	r.Post("/hos/calculate", s.CalculateSchedule)

	return r
}
