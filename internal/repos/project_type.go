package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type ProjectTypeRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ProjectType, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ProjectType, error)
	Create(ctx context.Context, tx *gorm.DB, pt *types.ProjectType) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type projectTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectTypeRepo(db *gorm.DB, baseLog *logger.Logger) ProjectTypeRepo {
	return &projectTypeRepo{db: db, log: baseLog.With("repo", "ProjectTypeRepo")}
}

func (r *projectTypeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.ProjectType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ProjectType
	if err := transaction.WithContext(ctx).
		Order("display_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectTypeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ProjectType, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ProjectType
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

func (r *projectTypeRepo) Create(ctx context.Context, tx *gorm.DB, pt *types.ProjectType) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(pt).Error
}

func (r *projectTypeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ProjectType{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
