package events

import (
	"time"

	"github.com/spec-kit/venue-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffProvisioned   EventType = "staff_provisioned"
	EventStaffDeprovisioned EventType = "staff_deprovisioned"
	EventStaffDisabled      EventType = "staff_disabled"
	EventManagerAssigned    EventType = "manager_assigned"
)

// Actor encapsulates who triggered an event.
type Actor struct {
	AccountID string      `json:"account_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by the staff workflows.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffProvisionedPayload payload.
type StaffProvisionedPayload struct {
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
	VenueID string      `json:"venue_id"`
}

// StaffDeprovisionedPayload payload.
type StaffDeprovisionedPayload struct {
	AccountID string `json:"account_id"`
}

// StaffDisabledPayload payload.
type StaffDisabledPayload struct {
	AccountID string `json:"account_id"`
	VenueID   string `json:"venue_id,omitempty"`
}

// ManagerAssignedPayload payload.
type ManagerAssignedPayload struct {
	VenueID   string `json:"venue_id"`
	ManagerID string `json:"manager_id"`
}
