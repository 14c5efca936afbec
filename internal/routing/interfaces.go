package routing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	"github.com/docksidelabs/leadrouter-backend/pkg/outbox"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service defines the lead routing operations.
type Service interface {
	FindMatchingVendors(ctx context.Context, req MatchRequest) ([]MatchedVendor, error)
	SelectVendorFromPool(ctx context.Context, accountID uuid.UUID, pool []MatchedVendor) (*models.Vendor, enums.RoutingMethod, error)
	CommitAssignment(ctx context.Context, leadID, vendorID uuid.UUID, method enums.RoutingMethod) (bool, error)
	RouteLead(ctx context.Context, leadID uuid.UUID) (*AssignmentResult, error)
	Reassign(ctx context.Context, leadID uuid.UUID, excludePrevious bool) (*ReassignmentResult, error)
	BulkReassign(ctx context.Context, leadIDs []uuid.UUID) ([]ReassignmentResult, error)
	UpdateConfiguration(ctx context.Context, accountID uuid.UUID, performancePercentage int) error
	GetStats(ctx context.Context, accountID uuid.UUID) (*Stats, error)
}
