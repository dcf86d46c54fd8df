package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type EstimateRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Estimate, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Estimate, error)
	Create(ctx context.Context, tx *gorm.DB, e *types.Estimate) error
}

type estimateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEstimateRepo(db *gorm.DB, baseLog *logger.Logger) EstimateRepo {
	return &estimateRepo{db: db, log: baseLog.With("repo", "EstimateRepo")}
}

func (r *estimateRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Estimate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Estimate
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *estimateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Estimate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Estimate
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *estimateRepo) Create(ctx context.Context, tx *gorm.DB, e *types.Estimate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(e).Error
}
