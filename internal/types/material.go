package types

import (
	"time"

	"github.com/google/uuid"
)

// Material is a priced consumable usable on an estimate item.
type Material struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"displayName"`
	Unit        string    `gorm:"column:unit;not null" json:"unit"`
	CostPerUnit *float64  `gorm:"column:cost_per_unit" json:"costPerUnit"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Material) TableName() string { return "materials" }
