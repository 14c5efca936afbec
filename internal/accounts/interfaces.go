package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
)

// Repository is the persistence surface for account records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	UpdatePerformancePercentage(ctx context.Context, id uuid.UUID, percentage int) error
}
