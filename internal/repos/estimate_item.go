package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type EstimateItemRepo interface {
	GetByEstimate(ctx context.Context, tx *gorm.DB, estimateID uuid.UUID) ([]*types.EstimateItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EstimateItem, error)
	Create(ctx context.Context, tx *gorm.DB, item *types.EstimateItem) error
}

type estimateItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEstimateItemRepo(db *gorm.DB, baseLog *logger.Logger) EstimateItemRepo {
	return &estimateItemRepo{db: db, log: baseLog.With("repo", "EstimateItemRepo")}
}

// GetByEstimate returns the estimate's items in creation order. The id is the
// tie-breaker so the order stays stable when timestamps collide.
func (r *estimateItemRepo) GetByEstimate(ctx context.Context, tx *gorm.DB, estimateID uuid.UUID) ([]*types.EstimateItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EstimateItem
	if err := transaction.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *estimateItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EstimateItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.EstimateItem
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

func (r *estimateItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.EstimateItem) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(item).Error
}
