package types

import (
	"time"

	"github.com/google/uuid"
)

// Surface is a paintable area type within a project type, e.g. "Ceilings".
type Surface struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectTypeID uuid.UUID    `gorm:"type:uuid;column:project_type_id;not null;index" json:"projectTypeId"`
	ProjectType   *ProjectType `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectTypeID;references:ID" json:"projectType,omitempty"`
	Name          string       `gorm:"column:name;not null" json:"name"`
	DisplayName   string       `gorm:"column:display_name;not null" json:"displayName"`
	CreatedAt     time.Time    `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Surface) TableName() string { return "surfaces" }
