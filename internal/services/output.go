package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/types"
	"github.com/brushline/estimator-backend/internal/validation"
)

// OutputService resolves and maintains the one production-rate row a
// scenario may have.
type OutputService interface {
	// Resolve returns the scenario's output, or nil when none is configured.
	Resolve(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) (*types.Output, error)
	CreateOrUpdate(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID, outputValue float64, outputUnit string) (*types.Output, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type outputService struct {
	db         *gorm.DB
	log        *logger.Logger
	outputRepo repos.OutputRepo
}

func NewOutputService(db *gorm.DB, baseLog *logger.Logger, outputRepo repos.OutputRepo) OutputService {
	return &outputService{
		db:         db,
		log:        baseLog.With("service", "OutputService"),
		outputRepo: outputRepo,
	}
}

func (os *outputService) Resolve(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) (*types.Output, error) {
	return os.outputRepo.GetByScenario(ctx, tx, scenarioID)
}

func (os *outputService) CreateOrUpdate(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID, outputValue float64, outputUnit string) (*types.Output, error) {
	if err := validation.Required("output", map[string]string{
		"scenarioId":  uuidField(scenarioID),
		"outputValue": numberField(outputValue),
		"outputUnit":  outputUnit,
	}); err != nil {
		return nil, err
	}
	// A zero or negative rate would make the day computation meaningless.
	if outputValue <= 0 {
		return nil, &validation.Error{Entity: "output", Fields: []string{"outputValue"}}
	}
	if !types.ValidOutputUnit(outputUnit) {
		return nil, &validation.Error{Entity: "output", Fields: []string{"outputUnit"}}
	}

	now := time.Now()
	out := &types.Output{
		ID:          uuid.New(),
		ScenarioID:  scenarioID,
		OutputValue: outputValue,
		OutputUnit:  outputUnit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := os.outputRepo.CreateOrUpdate(ctx, tx, out); err != nil {
		os.log.Error("CreateOrUpdate output failed", "error", err, "scenario_id", scenarioID)
		return nil, fmt.Errorf("upsert output: %w", err)
	}
	// Re-read so an update returns the surviving row's id and created_at,
	// not the candidate row we just offered to the conflict clause.
	persisted, err := os.outputRepo.GetByScenario(ctx, tx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("reload output: %w", err)
	}
	if persisted == nil {
		return nil, fmt.Errorf("output missing after upsert for scenario %s", scenarioID)
	}
	return persisted, nil
}

func (os *outputService) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	return os.outputRepo.Delete(ctx, tx, id)
}
