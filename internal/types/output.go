package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutputUnitUnits    = "units"
	OutputUnitSqFt     = "sq_ft"
	OutputUnitLinearFt = "linear_ft"
)

func ValidOutputUnit(unit string) bool {
	switch unit {
	case OutputUnitUnits, OutputUnitSqFt, OutputUnitLinearFt:
		return true
	default:
		return false
	}
}

// Output is the production rate for a scenario: amount completed per day,
// with its unit. A scenario has at most one output row.
type Output struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScenarioID  uuid.UUID `gorm:"type:uuid;column:scenario_id;not null;uniqueIndex" json:"scenarioId"`
	Scenario    *Scenario `gorm:"constraint:OnDelete:CASCADE;foreignKey:ScenarioID;references:ID" json:"scenario,omitempty"`
	OutputValue float64   `gorm:"column:output_value;not null" json:"outputValue"`
	OutputUnit  string    `gorm:"column:output_unit;not null" json:"outputUnit"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Output) TableName() string { return "outputs" }
