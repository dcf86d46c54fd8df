package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type EstimateItemMaterialRepo interface {
	GetByEstimateItemIDs(ctx context.Context, tx *gorm.DB, estimateItemIDs []uuid.UUID) ([]*types.EstimateItemMaterial, error)
	GetByItemAndMaterial(ctx context.Context, tx *gorm.DB, estimateItemID, materialID uuid.UUID) (*types.EstimateItemMaterial, error)
	Upsert(ctx context.Context, tx *gorm.DB, eim *types.EstimateItemMaterial) error
}

type estimateItemMaterialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEstimateItemMaterialRepo(db *gorm.DB, baseLog *logger.Logger) EstimateItemMaterialRepo {
	return &estimateItemMaterialRepo{db: db, log: baseLog.With("repo", "EstimateItemMaterialRepo")}
}

func (r *estimateItemMaterialRepo) GetByEstimateItemIDs(ctx context.Context, tx *gorm.DB, estimateItemIDs []uuid.UUID) ([]*types.EstimateItemMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EstimateItemMaterial
	if len(estimateItemIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("estimate_item_id IN ?", estimateItemIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *estimateItemMaterialRepo) GetByItemAndMaterial(ctx context.Context, tx *gorm.DB, estimateItemID, materialID uuid.UUID) (*types.EstimateItemMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.EstimateItemMaterial
	err := transaction.WithContext(ctx).
		Where("estimate_item_id = ? AND material_id = ?", estimateItemID, materialID).
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

// Upsert keys on (estimate_item_id, material_id); re-adding a material to an
// item replaces the quantity on the existing row.
func (r *estimateItemMaterialRepo) Upsert(ctx context.Context, tx *gorm.DB, eim *types.EstimateItemMaterial) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "estimate_item_id"}, {Name: "material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(eim).Error
}
