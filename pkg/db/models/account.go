package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a tenant whose leads are routed to its vendor roster.
type Account struct {
	ID                    uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string     `gorm:"column:name;not null"`
	TestMode              bool       `gorm:"column:test_mode;not null;default:false"`
	PerformancePercentage int        `gorm:"column:performance_percentage;not null;default:0"`
	Vendors               []Vendor   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt             *time.Time `gorm:"column:deleted_at"`
}
