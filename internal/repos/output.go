package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
)

type OutputRepo interface {
	GetByScenario(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) (*types.Output, error)
	CreateOrUpdate(ctx context.Context, tx *gorm.DB, out *types.Output) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type outputRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOutputRepo(db *gorm.DB, baseLog *logger.Logger) OutputRepo {
	return &outputRepo{db: db, log: baseLog.With("repo", "OutputRepo")}
}

func (r *outputRepo) GetByScenario(ctx context.Context, tx *gorm.DB, scenarioID uuid.UUID) (*types.Output, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Output
	err := transaction.WithContext(ctx).
		Where("scenario_id = ?", scenarioID).
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

// CreateOrUpdate inserts the output row, or overwrites value/unit/updated_at
// when the scenario already has one. The unique index on scenario_id plus the
// conflict clause keeps this atomic under concurrent writers; there is no
// read-then-write window to race through.
func (r *outputRepo) CreateOrUpdate(ctx context.Context, tx *gorm.DB, out *types.Output) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "scenario_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"output_value", "output_unit", "updated_at",
			}),
		}).
		Create(out).Error
}

func (r *outputRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Output{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
