package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an accounts repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var row models.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finding account")
	}
	return &row, nil
}

func (r *repository) UpdatePerformancePercentage(ctx context.Context, id uuid.UUID, percentage int) error {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Update("performance_percentage", percentage)
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "updating performance percentage")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
	}
	return nil
}
