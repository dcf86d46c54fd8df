package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type SurfaceRepo interface {
	GetByProjectType(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID) ([]*types.Surface, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Surface, error)
	Create(ctx context.Context, tx *gorm.DB, s *types.Surface) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type surfaceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurfaceRepo(db *gorm.DB, baseLog *logger.Logger) SurfaceRepo {
	return &surfaceRepo{db: db, log: baseLog.With("repo", "SurfaceRepo")}
}

func (r *surfaceRepo) GetByProjectType(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID) ([]*types.Surface, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Surface
	if err := transaction.WithContext(ctx).
		Where("project_type_id = ?", projectTypeID).
		Order("display_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *surfaceRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Surface, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Surface
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

func (r *surfaceRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Surface) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(s).Error
}

func (r *surfaceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Surface{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
