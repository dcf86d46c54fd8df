package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type MaterialRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Material, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Material, error)
	Create(ctx context.Context, tx *gorm.DB, m *types.Material) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return &materialRepo{db: db, log: baseLog.With("repo", "MaterialRepo")}
}

func (r *materialRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Material, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Material
	if err := transaction.WithContext(ctx).
		Order("display_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Material, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Material
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

func (r *materialRepo) Create(ctx context.Context, tx *gorm.DB, m *types.Material) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Material{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
