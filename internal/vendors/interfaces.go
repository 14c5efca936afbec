package vendors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
)

// Repository is the persistence surface for vendor records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Vendor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	TouchLastLeadAssigned(ctx context.Context, id uuid.UUID) error
}
