package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/docksidelabs/leadrouter-backend/pkg/enums"
)

// Vendor is a service provider eligible to receive routed leads.
type Vendor struct {
	ID                  uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountID           uuid.UUID          `gorm:"column:account_id;type:uuid;not null;index"`
	CompanyName         string             `gorm:"column:company_name;not null"`
	Status              enums.VendorStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	TakingNewWork       bool               `gorm:"column:taking_new_work;not null;default:false"`
	ServicesOffered     []string           `gorm:"column:services_offered;type:jsonb;serializer:json"`
	CoverageType        enums.CoverageType `gorm:"column:coverage_type;type:text;not null;default:'zip'"`
	CoverageStates      []string           `gorm:"column:coverage_states;type:jsonb;serializer:json"`
	CoverageCounties    []string           `gorm:"column:coverage_counties;type:jsonb;serializer:json"`
	CoverageZips        []string           `gorm:"column:coverage_zips;type:jsonb;serializer:json"`
	LeadClosePercentage float64            `gorm:"column:lead_close_percentage;not null;default:0"`
	LastLeadAssigned    *time.Time         `gorm:"column:last_lead_assigned"`
	CreatedAt           time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
