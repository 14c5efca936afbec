package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// Lead is an inbound customer request awaiting vendor assignment.
type Lead struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountID        uuid.UUID        `gorm:"column:account_id;type:uuid;not null;index"`
	CustomerName     string           `gorm:"column:customer_name;not null"`
	CustomerEmail    *string          `gorm:"column:customer_email"`
	CustomerPhone    *string          `gorm:"column:customer_phone"`
	ServiceCategory  string           `gorm:"column:service_category;not null"`
	SpecificService  *string          `gorm:"column:specific_service"`
	Zip              string           `gorm:"column:zip;not null"`
	ResolvedState    *string          `gorm:"column:resolved_state"`
	ResolvedCounty   *string          `gorm:"column:resolved_county"`
	EstimatedValue   decimal.Decimal  `gorm:"column:estimated_value;type:numeric(12,2);not null;default:0"`
	Status           enums.LeadStatus `gorm:"column:status;type:text;not null;default:'unassigned'"`
	AssignedVendorID *uuid.UUID       `gorm:"column:assigned_vendor_id;type:uuid;index"`
	AssignedAt       *time.Time       `gorm:"column:assigned_at"`
	SourceForm       *string          `gorm:"column:source_form"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
