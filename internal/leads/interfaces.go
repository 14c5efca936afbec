package leads

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
)

// Repository is the persistence surface for lead records. Assignment
// writes are compare-and-set so concurrent committers cannot both win.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Lead, error)
	AssignIfUnassigned(ctx context.Context, leadID, vendorID uuid.UUID, at time.Time) (bool, error)
	BeginReassignment(ctx context.Context, leadID, fromVendorID uuid.UUID) (bool, error)
	UpdateResolvedGeo(ctx context.Context, leadID uuid.UUID, state, county *string) error
}
