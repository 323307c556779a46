package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmercer/haulplan/backend/internal/domain"
	"github.com/dmercer/haulplan/backend/internal/handler"
	"github.com/dmercer/haulplan/backend/internal/hos"
	"github.com/dmercer/haulplan/backend/internal/service"
)

// ---- mock services ---------------------------------------------------------

// mockTripServicer is a hand-written test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockPlanner struct {
	plan func(ctx context.Context, req hos.PlanRequest) (domain.Schedule, error)
}

func (m *mockPlanner) Plan(ctx context.Context, req hos.PlanRequest) (domain.Schedule, error) {
	return m.plan(ctx, req)
}

var _ handler.Planner = (*mockPlanner)(nil)

type mockLogServicer struct {
	buildForTrip func(ctx context.Context, tripID uuid.UUID, durationHours float64, start time.Time) (service.DriverLog, error)
}

func (m *mockLogServicer) BuildForTrip(ctx context.Context, tripID uuid.UUID, durationHours float64, start time.Time) (service.DriverLog, error) {
	return m.buildForTrip(ctx, tripID, durationHours, start)
}

var _ handler.LogServicer = (*mockLogServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// serve routes one request through the full route tree and records the response.
func serve(s *handler.Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func newTripServer(trips handler.TripServicer) *handler.Server {
	return handler.NewServer(trips, nil, nil)
}
