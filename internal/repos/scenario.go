package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type ScenarioRepo interface {
	GetBySurface(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID) ([]*types.Scenario, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Scenario, error)
	Create(ctx context.Context, tx *gorm.DB, sc *types.Scenario) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type scenarioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScenarioRepo(db *gorm.DB, baseLog *logger.Logger) ScenarioRepo {
	return &scenarioRepo{db: db, log: baseLog.With("repo", "ScenarioRepo")}
}

func (r *scenarioRepo) GetBySurface(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Scenario
	if err := transaction.WithContext(ctx).
		Where("surface_id = ?", surfaceID).
		Order("display_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scenarioRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Scenario, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Scenario
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scenarioRepo) Create(ctx context.Context, tx *gorm.DB, sc *types.Scenario) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(sc).Error
}

func (r *scenarioRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Scenario{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
