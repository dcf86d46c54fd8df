package types

import (
	"time"

	"github.com/google/uuid"
)

// EstimateItem is one line of an estimate: a catalog selection snapshot plus
// the entered size and the derived day count. The catalog ids are recorded as
// they were at creation time and are never re-resolved, so they carry no
// foreign key constraints.
type EstimateItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EstimateID    uuid.UUID  `gorm:"type:uuid;column:estimate_id;not null;index" json:"estimateId"`
	ProjectTypeID uuid.UUID  `gorm:"type:uuid;column:project_type_id;not null" json:"projectTypeId"`
	SurfaceID     uuid.UUID  `gorm:"type:uuid;column:surface_id;not null" json:"surfaceId"`
	ScenarioID    uuid.UUID  `gorm:"type:uuid;column:scenario_id;not null" json:"scenarioId"`
	OutputID      *uuid.UUID `gorm:"type:uuid;column:output_id" json:"outputId"`
	Size          float64    `gorm:"column:size;not null" json:"size"`
	OutputValue   *float64   `gorm:"column:output_value" json:"outputValue"`
	OutputUnit    *string    `gorm:"column:output_unit" json:"outputUnit"`
	CostCode      *string    `gorm:"column:cost_code" json:"costCode"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null" json:"updatedAt"`

	// Joined data, populated by the deep fetch only.
	ProjectType *ProjectType            `gorm:"-" json:"projectType,omitempty"`
	Surface     *Surface                `gorm:"-" json:"surface,omitempty"`
	Scenario    *Scenario               `gorm:"-" json:"scenario,omitempty"`
	Materials   []*EstimateItemMaterial `gorm:"-" json:"materials,omitempty"`
}

func (EstimateItem) TableName() string { return "estimate_items" }
