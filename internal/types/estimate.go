package types

import (
	"time"

	"github.com/google/uuid"
)

type Estimate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      *string   `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Estimate) TableName() string { return "estimates" }

// EstimateWithItems is the deep-fetch shape: the estimate plus its items in
// creation order, each carrying joined catalog names and materials.
type EstimateWithItems struct {
	Estimate
	Items []*EstimateItem `json:"items"`
}
