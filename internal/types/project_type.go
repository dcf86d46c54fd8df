package types

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType is the top-level catalog tier, e.g. "Interior Repaint".
type ProjectType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"displayName"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (ProjectType) TableName() string { return "project_types" }
