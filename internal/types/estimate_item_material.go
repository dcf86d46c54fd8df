package types

import (
	"time"

	"github.com/google/uuid"
)

// EstimateItemMaterial records material usage on one estimate item. The
// (estimate_item_id, material_id) pair is unique; re-adding the same material
// replaces the quantity instead of duplicating the row. Append/upsert only,
// so there is no updated_at column.
type EstimateItemMaterial struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EstimateItemID uuid.UUID `gorm:"type:uuid;column:estimate_item_id;not null;uniqueIndex:idx_estimate_item_material" json:"estimateItemId"`
	MaterialID     uuid.UUID `gorm:"type:uuid;column:material_id;not null;uniqueIndex:idx_estimate_item_material" json:"materialId"`
	Quantity       float64   `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"createdAt"`

	// Joined data, populated by the deep fetch only.
	Material *Material `gorm:"-" json:"material,omitempty"`
}

func (EstimateItemMaterial) TableName() string { return "estimate_item_materials" }
