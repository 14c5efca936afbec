package leads

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/docksidelabs/leadrouter-backend/pkg/db/models"
	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
	pkgerrors "github.com/docksidelabs/leadrouter-backend/pkg/errors"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a leads repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating lead")
	}
	return lead, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	var row models.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finding lead")
	}
	return &row, nil
}

func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Lead, error) {
	var rows []models.Lead
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing leads")
	}
	return rows, nil
}

// AssignIfUnassigned commits an assignment with a single conditional
// UPDATE. The WHERE guard on assigned_vendor_id IS NULL makes the write
// race-free: of N concurrent committers exactly one sees RowsAffected=1.
// Returns false when another committer already won.
func (r *repository) AssignIfUnassigned(ctx context.Context, leadID, vendorID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("id = ? AND assigned_vendor_id IS NULL", leadID).
		Updates(map[string]any{
			"assigned_vendor_id": vendorID,
			"assigned_at":        at,
			"status":             enums.LeadStatusAssigned,
		})
	if res.Error != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "assigning lead")
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	// Guard failed: distinguish a lost race from a missing lead.
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Lead{}).Where("id = ?", leadID).Count(&count).Error; err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking lead existence")
	}
	if count == 0 {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	return false, nil
}

// BeginReassignment clears the current assignment, keyed on the vendor
// the caller observed. Returns false when the lead moved underneath the
// caller.
func (r *repository) BeginReassignment(ctx context.Context, leadID, fromVendorID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("id = ? AND assigned_vendor_id = ?", leadID, fromVendorID).
		Updates(map[string]any{
			"assigned_vendor_id": nil,
			"assigned_at":        nil,
			"status":             enums.LeadStatusReassigning,
		})
	if res.Error != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "starting reassignment")
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) UpdateResolvedGeo(ctx context.Context, leadID uuid.UUID, state, county *string) error {
	err := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("id = ?", leadID).
		Updates(map[string]any{
			"resolved_state":  state,
			"resolved_county": county,
		}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating resolved geo")
	}
	return nil
}
