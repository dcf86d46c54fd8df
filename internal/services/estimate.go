package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/estimating"
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/types"
	"github.com/brushline/estimator-backend/internal/validation"
)

// ErrScenarioNotConfigured means the selected scenario has no production rate
// yet, so no day count can be derived for the item.
var ErrScenarioNotConfigured = errors.New("scenario not configured")

type CreateEstimateItemInput struct {
	EstimateID    uuid.UUID
	ProjectTypeID uuid.UUID
	SurfaceID     uuid.UUID
	ScenarioID    uuid.UUID
	Size          *float64
	CostCode      *string
	Materials     []MaterialUsage
}

type MaterialUsage struct {
	MaterialID uuid.UUID
	Quantity   float64
}

type EstimateService interface {
	CreateEstimate(ctx context.Context, tx *gorm.DB, name *string) (*types.Estimate, error)
	ListEstimates(ctx context.Context, tx *gorm.DB) ([]*types.Estimate, error)
	CreateItem(ctx context.Context, tx *gorm.DB, input CreateEstimateItemInput) (*types.EstimateItem, error)
	AddMaterialToItem(ctx context.Context, tx *gorm.DB, estimateItemID, materialID uuid.UUID, quantity float64) (*types.EstimateItemMaterial, error)
	// GetEstimateWithItems returns the estimate with its items in creation
	// order, each joined with catalog names and materials. Nil when the
	// estimate id is unknown.
	GetEstimateWithItems(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EstimateWithItems, error)
}

type estimateService struct {
	db              *gorm.DB
	log             *logger.Logger
	estimateRepo    repos.EstimateRepo
	itemRepo        repos.EstimateItemRepo
	itemMatRepo     repos.EstimateItemMaterialRepo
	projectTypeRepo repos.ProjectTypeRepo
	surfaceRepo     repos.SurfaceRepo
	scenarioRepo    repos.ScenarioRepo
	outputRepo      repos.OutputRepo
	materialRepo    repos.MaterialRepo
}

func NewEstimateService(
	db *gorm.DB,
	baseLog *logger.Logger,
	estimateRepo repos.EstimateRepo,
	itemRepo repos.EstimateItemRepo,
	itemMatRepo repos.EstimateItemMaterialRepo,
	projectTypeRepo repos.ProjectTypeRepo,
	surfaceRepo repos.SurfaceRepo,
	scenarioRepo repos.ScenarioRepo,
	outputRepo repos.OutputRepo,
	materialRepo repos.MaterialRepo,
) EstimateService {
	return &estimateService{
		db:              db,
		log:             baseLog.With("service", "EstimateService"),
		estimateRepo:    estimateRepo,
		itemRepo:        itemRepo,
		itemMatRepo:     itemMatRepo,
		projectTypeRepo: projectTypeRepo,
		surfaceRepo:     surfaceRepo,
		scenarioRepo:    scenarioRepo,
		outputRepo:      outputRepo,
		materialRepo:    materialRepo,
	}
}

func (es *estimateService) CreateEstimate(ctx context.Context, tx *gorm.DB, name *string) (*types.Estimate, error) {
	now := time.Now()
	estimate := &types.Estimate{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := es.estimateRepo.Create(ctx, tx, estimate); err != nil {
		es.log.Error("CreateEstimate failed", "error", err)
		return nil, fmt.Errorf("create estimate: %w", err)
	}
	return estimate, nil
}

func (es *estimateService) ListEstimates(ctx context.Context, tx *gorm.DB) ([]*types.Estimate, error) {
	return es.estimateRepo.GetAll(ctx, tx)
}

// CreateItem resolves the scenario's production rate server-side, derives the
// day count, and persists the item with the rate snapshotted onto it. The
// catalog ids are stored as given; they are a point-in-time selection, not a
// reference that gets re-checked.
func (es *estimateService) CreateItem(ctx context.Context, tx *gorm.DB, input CreateEstimateItemInput) (*types.EstimateItem, error) {
	fields := map[string]string{
		"estimateId":    uuidField(input.EstimateID),
		"projectTypeId": uuidField(input.ProjectTypeID),
		"surfaceId":     uuidField(input.SurfaceID),
		"scenarioId":    uuidField(input.ScenarioID),
	}
	if input.Size != nil {
		fields["size"] = numberField(*input.Size)
		if *input.Size == 0 {
			// Zero is an accepted size; only absence fails validation.
			fields["size"] = "0"
		}
	}
	if err := validation.Required("estimateItem", fields); err != nil {
		return nil, err
	}

	output, err := es.outputRepo.GetByScenario(ctx, tx, input.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("resolve output: %w", err)
	}
	if output == nil {
		return nil, ErrScenarioNotConfigured
	}
	days, err := estimating.ComputeDerivedQuantity(*input.Size, output)
	if err != nil {
		return nil, fmt.Errorf("compute derived quantity: %w", err)
	}

	now := time.Now()
	item := &types.EstimateItem{
		ID:            uuid.New(),
		EstimateID:    input.EstimateID,
		ProjectTypeID: input.ProjectTypeID,
		SurfaceID:     input.SurfaceID,
		ScenarioID:    input.ScenarioID,
		OutputID:      &output.ID,
		Size:          *input.Size,
		OutputValue:   &days,
		OutputUnit:    &output.OutputUnit,
		CostCode:      input.CostCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if len(input.Materials) == 0 {
		if err := es.itemRepo.Create(ctx, tx, item); err != nil {
			es.log.Error("CreateItem failed", "error", err)
			return nil, fmt.Errorf("create estimate item: %w", err)
		}
		return item, nil
	}

	// Item plus inline materials commit together so a crash mid-sequence
	// cannot leave a visible item with half its materials.
	run := func(transaction *gorm.DB) error {
		if err := es.itemRepo.Create(ctx, transaction, item); err != nil {
			return fmt.Errorf("create estimate item: %w", err)
		}
		for _, usage := range input.Materials {
			eim := &types.EstimateItemMaterial{
				ID:             uuid.New(),
				EstimateItemID: item.ID,
				MaterialID:     usage.MaterialID,
				Quantity:       usage.Quantity,
				CreatedAt:      now,
			}
			if err := es.itemMatRepo.Upsert(ctx, transaction, eim); err != nil {
				return fmt.Errorf("attach material %s: %w", usage.MaterialID, err)
			}
		}
		return nil
	}
	if tx != nil {
		if err := run(tx); err != nil {
			es.log.Error("CreateItem failed", "error", err)
			return nil, err
		}
		return item, nil
	}
	if err := es.db.WithContext(ctx).Transaction(run); err != nil {
		es.log.Error("CreateItem failed", "error", err)
		return nil, err
	}
	return item, nil
}

func (es *estimateService) AddMaterialToItem(ctx context.Context, tx *gorm.DB, estimateItemID, materialID uuid.UUID, quantity float64) (*types.EstimateItemMaterial, error) {
	if err := validation.Required("estimateItemMaterial", map[string]string{
		"estimateItemId": uuidField(estimateItemID),
		"materialId":     uuidField(materialID),
		"quantity":       "set", // quantity <= 0 is accepted, only the pair is required
	}); err != nil {
		return nil, err
	}
	eim := &types.EstimateItemMaterial{
		ID:             uuid.New(),
		EstimateItemID: estimateItemID,
		MaterialID:     materialID,
		Quantity:       quantity,
		CreatedAt:      time.Now(),
	}
	if err := es.itemMatRepo.Upsert(ctx, tx, eim); err != nil {
		es.log.Error("AddMaterialToItem failed", "error", err, "estimate_item_id", estimateItemID)
		return nil, fmt.Errorf("attach material: %w", err)
	}
	persisted, err := es.itemMatRepo.GetByItemAndMaterial(ctx, tx, estimateItemID, materialID)
	if err != nil {
		return nil, fmt.Errorf("reload estimate item material: %w", err)
	}
	if persisted == nil {
		return nil, fmt.Errorf("estimate item material missing after upsert")
	}
	return persisted, nil
}

func (es *estimateService) GetEstimateWithItems(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EstimateWithItems, error) {
	estimate, err := es.estimateRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load estimate: %w", err)
	}
	if estimate == nil {
		return nil, nil
	}
	items, err := es.itemRepo.GetByEstimate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("load estimate items: %w", err)
	}

	ptIDs := make([]uuid.UUID, 0, len(items))
	surfaceIDs := make([]uuid.UUID, 0, len(items))
	scenarioIDs := make([]uuid.UUID, 0, len(items))
	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ptIDs = append(ptIDs, item.ProjectTypeID)
		surfaceIDs = append(surfaceIDs, item.SurfaceID)
		scenarioIDs = append(scenarioIDs, item.ScenarioID)
		itemIDs = append(itemIDs, item.ID)
	}

	var (
		projectTypes []*types.ProjectType
		surfaces     []*types.Surface
		scenarios    []*types.Scenario
		usages       []*types.EstimateItemMaterial
	)
	loads := []func(ctx context.Context) error{
		func(ctx context.Context) error {
			var err error
			projectTypes, err = es.projectTypeRepo.GetByIDs(ctx, tx, dedupe(ptIDs))
			return err
		},
		func(ctx context.Context) error {
			var err error
			surfaces, err = es.surfaceRepo.GetByIDs(ctx, tx, dedupe(surfaceIDs))
			return err
		},
		func(ctx context.Context) error {
			var err error
			scenarios, err = es.scenarioRepo.GetByIDs(ctx, tx, dedupe(scenarioIDs))
			return err
		},
		func(ctx context.Context) error {
			var err error
			usages, err = es.itemMatRepo.GetByEstimateItemIDs(ctx, tx, itemIDs)
			return err
		},
	}
	// The join lookups are independent reads; fan them out over the pool
	// unless the caller pinned this fetch to a transaction.
	if tx == nil {
		g, gctx := errgroup.WithContext(ctx)
		for _, load := range loads {
			load := load
			g.Go(func() error { return load(gctx) })
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("load estimate joins: %w", err)
		}
	} else {
		for _, load := range loads {
			if err := load(ctx); err != nil {
				return nil, fmt.Errorf("load estimate joins: %w", err)
			}
		}
	}

	materialIDs := make([]uuid.UUID, 0, len(usages))
	for _, usage := range usages {
		materialIDs = append(materialIDs, usage.MaterialID)
	}
	materials, err := es.materialRepo.GetByIDs(ctx, tx, dedupe(materialIDs))
	if err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}

	ptByID := make(map[uuid.UUID]*types.ProjectType, len(projectTypes))
	for _, pt := range projectTypes {
		ptByID[pt.ID] = pt
	}
	surfaceByID := make(map[uuid.UUID]*types.Surface, len(surfaces))
	for _, s := range surfaces {
		surfaceByID[s.ID] = s
	}
	scenarioByID := make(map[uuid.UUID]*types.Scenario, len(scenarios))
	for _, sc := range scenarios {
		scenarioByID[sc.ID] = sc
	}
	materialByID := make(map[uuid.UUID]*types.Material, len(materials))
	for _, m := range materials {
		materialByID[m.ID] = m
	}
	usagesByItem := make(map[uuid.UUID][]*types.EstimateItemMaterial, len(items))
	for _, usage := range usages {
		usage.Material = materialByID[usage.MaterialID]
		usagesByItem[usage.EstimateItemID] = append(usagesByItem[usage.EstimateItemID], usage)
	}

	for _, item := range items {
		item.ProjectType = ptByID[item.ProjectTypeID]
		item.Surface = surfaceByID[item.SurfaceID]
		item.Scenario = scenarioByID[item.ScenarioID]
		item.Materials = usagesByItem[item.ID]
	}

	return &types.EstimateWithItems{Estimate: *estimate, Items: items}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
