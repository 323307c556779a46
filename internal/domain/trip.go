// Package domain contains the core data types for the HaulPlan API.
// This package has zero dependencies on the other internal packages and is
// imported by every one of them (hos, logsheet, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the persistent record of a planned haul. It carries the inputs a
// driver log is generated from; computed schedules are derived fresh on every
// request and never stored.
type Trip struct {
	ID               uuid.UUID `json:"id"`
	CurrentLocation  string    `json:"current_location"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	CurrentCycleUsed int       `json:"current_cycle_used"` // hours used in the 70-hour/8-day cycle
	ShippingNumber   string    `json:"shipping_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
