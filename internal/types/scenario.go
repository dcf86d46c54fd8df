package types

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a condition/technique under a surface, e.g. "Low Volume Nine
// or Ten Foot Ceiling Repaint".
type Scenario struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SurfaceID   uuid.UUID `gorm:"type:uuid;column:surface_id;not null;index" json:"surfaceId"`
	Surface     *Surface  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SurfaceID;references:ID" json:"surface,omitempty"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"displayName"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Scenario) TableName() string { return "scenarios" }
