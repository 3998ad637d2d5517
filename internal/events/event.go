// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadgen_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCaptured is published when a new lead is created through the intake API.
type LeadCaptured struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ZipCode   string    `json:"zipCode"`
	Timeline  string    `json:"timeline"`
	Score     int       `json:"score"`
}

func (e LeadCaptured) EventName() string { return "leads.lead.captured" }

// LeadUpdated is published after an admin edits a lead.
type LeadUpdated struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Stage  string    `json:"stage"`
	Score  int       `json:"score"`
}

func (e LeadUpdated) EventName() string { return "leads.lead.updated" }

// =============================================================================
// Pricing Domain Events
// =============================================================================

// ZipRateSaved is published when an admin writes a ZIP price-per-sqft override.
type ZipRateSaved struct {
	BaseEvent
	ZipCode      string  `json:"zipCode"`
	PricePerSqft float64 `json:"pricePerSqft"`
}

func (e ZipRateSaved) EventName() string { return "pricing.zip_rate.saved" }
