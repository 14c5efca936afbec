package routing

import (
	"github.com/google/uuid"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// MatchRequest describes a lead's needs for vendor pool filtering.
type MatchRequest struct {
	AccountID        uuid.UUID
	ServiceCategory  string
	SpecificService  *string
	Zip              string
	TestMode         bool
	ExcludeVendorIDs []uuid.UUID
}

// serviceToMatch prefers the specific service when the form captured one.
func (r MatchRequest) serviceToMatch() string {
	if r.SpecificService != nil && *r.SpecificService != "" {
		return *r.SpecificService
	}
	return r.ServiceCategory
}

// MatchedVendor is a pool entry annotated with why its coverage matched.
type MatchedVendor struct {
	Vendor      models.Vendor `json:"vendor"`
	MatchReason string        `json:"match_reason"`
}

// AssignmentResult reports the outcome of routing a single lead.
type AssignmentResult struct {
	LeadID      uuid.UUID           `json:"lead_id"`
	Assigned    bool                `json:"assigned"`
	VendorID    *uuid.UUID          `json:"vendor_id,omitempty"`
	Method      enums.RoutingMethod `json:"method,omitempty"`
	MatchedPool int                 `json:"matched_pool"`
}

// ReassignmentOutcome classifies what a reassignment attempt achieved.
type ReassignmentOutcome string

const (
	// OutcomeReassigned means a new vendor was committed.
	OutcomeReassigned ReassignmentOutcome = "reassigned"
	// OutcomeNoAlternative means no other vendor qualified; the lead is
	// left unassigned in the reassigning state for manual follow-up.
	OutcomeNoAlternative ReassignmentOutcome = "no_alternative"
	// OutcomeConflict means the lead's assignment changed underneath the
	// caller before the reassignment could start.
	OutcomeConflict ReassignmentOutcome = "conflict"
)

// ReassignmentResult reports one lead's reassignment attempt.
type ReassignmentResult struct {
	LeadID           uuid.UUID           `json:"lead_id"`
	PreviousVendorID uuid.UUID           `json:"previous_vendor_id"`
	NewVendorID      *uuid.UUID          `json:"new_vendor_id,omitempty"`
	Outcome          ReassignmentOutcome `json:"outcome"`
	Method           enums.RoutingMethod `json:"method,omitempty"`
}

// Configuration is the per-account routing dial.
type Configuration struct {
	PerformancePercentage int `json:"performance_percentage"`
	RoundRobinPercentage  int `json:"round_robin_percentage"`
}

// Stats summarizes an account's routing posture.
type Stats struct {
	Configuration        Configuration  `json:"routing_configuration"`
	TotalVendors         int            `json:"total_vendors"`
	ActiveVendors        int            `json:"active_vendors"`
	VendorsTakingWork    int            `json:"vendors_taking_work"`
	CoverageDistribution map[string]int `json:"coverage_distribution"`
}

// Assigned and reassigned events staged through the outbox.
type LeadAssignedEvent struct {
	LeadID   uuid.UUID           `json:"lead_id"`
	VendorID uuid.UUID           `json:"vendor_id"`
	Method   enums.RoutingMethod `json:"method"`
}

type LeadReassignedEvent struct {
	LeadID           uuid.UUID           `json:"lead_id"`
	PreviousVendorID uuid.UUID           `json:"previous_vendor_id"`
	NewVendorID      uuid.UUID           `json:"new_vendor_id"`
	Method           enums.RoutingMethod `json:"method"`
}

type ReassignmentFailedEvent struct {
	LeadID           uuid.UUID `json:"lead_id"`
	PreviousVendorID uuid.UUID `json:"previous_vendor_id"`
	Reason           string    `json:"reason"`
}
