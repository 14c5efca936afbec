package vendors

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a vendors repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Vendor, error) {
	var rows []models.Vendor
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing vendors")
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var row models.Vendor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finding vendor")
	}
	return &row, nil
}

// TouchLastLeadAssigned advances the vendor's rotation timestamp after a
// committed assignment.
func (r *repository) TouchLastLeadAssigned(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&models.Vendor{}).
		Where("id = ?", id).
		Update("last_lead_assigned", time.Now().UTC()).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating last_lead_assigned")
	}
	return nil
}
