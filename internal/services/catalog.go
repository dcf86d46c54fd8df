package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/types"
	"github.com/brushline/estimator-backend/internal/validation"
)

// CatalogService owns the administrative catalog: project types, their
// surfaces, the surfaces' scenarios, and the materials price list.
type CatalogService interface {
	ListProjectTypes(ctx context.Context, tx *gorm.DB) ([]*types.ProjectType, error)
	CreateProjectType(ctx context.Context, tx *gorm.DB, name, displayName string) (*types.ProjectType, error)
	DeleteProjectType(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)

	ListSurfaces(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID) ([]*types.Surface, error)
	CreateSurface(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID, name, displayName string) (*types.Surface, error)
	DeleteSurface(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)

	ListScenarios(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID) ([]*types.Scenario, error)
	CreateScenario(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID, name, displayName string) (*types.Scenario, error)
	DeleteScenario(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)

	ListMaterials(ctx context.Context, tx *gorm.DB) ([]*types.Material, error)
	CreateMaterial(ctx context.Context, tx *gorm.DB, name, displayName, unit string, costPerUnit *float64) (*types.Material, error)
	DeleteMaterial(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type catalogService struct {
	db              *gorm.DB
	log             *logger.Logger
	projectTypeRepo repos.ProjectTypeRepo
	surfaceRepo     repos.SurfaceRepo
	scenarioRepo    repos.ScenarioRepo
	materialRepo    repos.MaterialRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	projectTypeRepo repos.ProjectTypeRepo,
	surfaceRepo repos.SurfaceRepo,
	scenarioRepo repos.ScenarioRepo,
	materialRepo repos.MaterialRepo,
) CatalogService {
	return &catalogService{
		db:              db,
		log:             baseLog.With("service", "CatalogService"),
		projectTypeRepo: projectTypeRepo,
		surfaceRepo:     surfaceRepo,
		scenarioRepo:    scenarioRepo,
		materialRepo:    materialRepo,
	}
}

func (cs *catalogService) ListProjectTypes(ctx context.Context, tx *gorm.DB) ([]*types.ProjectType, error) {
	return cs.projectTypeRepo.GetAll(ctx, tx)
}

func (cs *catalogService) CreateProjectType(ctx context.Context, tx *gorm.DB, name, displayName string) (*types.ProjectType, error) {
	if err := validation.Required("projectType", map[string]string{
		"name":        name,
		"displayName": displayName,
	}); err != nil {
		return nil, err
	}
	now := time.Now()
	pt := &types.ProjectType{
		ID:          uuid.New(),
		Name:        name,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cs.projectTypeRepo.Create(ctx, tx, pt); err != nil {
		cs.log.Error("CreateProjectType failed", "error", err)
		return nil, fmt.Errorf("create project type: %w", err)
	}
	return pt, nil
}

// DeleteProjectType removes the project type; surfaces, scenarios, and
// outputs underneath it go with it via the storage cascade.
func (cs *catalogService) DeleteProjectType(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	return cs.projectTypeRepo.Delete(ctx, tx, id)
}

func (cs *catalogService) ListSurfaces(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID) ([]*types.Surface, error) {
	return cs.surfaceRepo.GetByProjectType(ctx, tx, projectTypeID)
}

func (cs *catalogService) CreateSurface(ctx context.Context, tx *gorm.DB, projectTypeID uuid.UUID, name, displayName string) (*types.Surface, error) {
	if err := validation.Required("surface", map[string]string{
		"name":          name,
		"displayName":   displayName,
		"projectTypeId": uuidField(projectTypeID),
	}); err != nil {
		return nil, err
	}
	now := time.Now()
	surface := &types.Surface{
		ID:            uuid.New(),
		ProjectTypeID: projectTypeID,
		Name:          name,
		DisplayName:   displayName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := cs.surfaceRepo.Create(ctx, tx, surface); err != nil {
		cs.log.Error("CreateSurface failed", "error", err)
		return nil, fmt.Errorf("create surface: %w", err)
	}
	return surface, nil
}

func (cs *catalogService) DeleteSurface(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	return cs.surfaceRepo.Delete(ctx, tx, id)
}

func (cs *catalogService) ListScenarios(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID) ([]*types.Scenario, error) {
	return cs.scenarioRepo.GetBySurface(ctx, tx, surfaceID)
}

func (cs *catalogService) CreateScenario(ctx context.Context, tx *gorm.DB, surfaceID uuid.UUID, name, displayName string) (*types.Scenario, error) {
	if err := validation.Required("scenario", map[string]string{
		"name":        name,
		"displayName": displayName,
		"surfaceId":   uuidField(surfaceID),
	}); err != nil {
		return nil, err
	}
	now := time.Now()
	scenario := &types.Scenario{
		ID:          uuid.New(),
		SurfaceID:   surfaceID,
		Name:        name,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cs.scenarioRepo.Create(ctx, tx, scenario); err != nil {
		cs.log.Error("CreateScenario failed", "error", err)
		return nil, fmt.Errorf("create scenario: %w", err)
	}
	return scenario, nil
}

func (cs *catalogService) DeleteScenario(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	return cs.scenarioRepo.Delete(ctx, tx, id)
}

func (cs *catalogService) ListMaterials(ctx context.Context, tx *gorm.DB) ([]*types.Material, error) {
	return cs.materialRepo.GetAll(ctx, tx)
}

func (cs *catalogService) CreateMaterial(ctx context.Context, tx *gorm.DB, name, displayName, unit string, costPerUnit *float64) (*types.Material, error) {
	if err := validation.Required("material", map[string]string{
		"name":        name,
		"displayName": displayName,
		"unit":        unit,
	}); err != nil {
		return nil, err
	}
	now := time.Now()
	material := &types.Material{
		ID:          uuid.New(),
		Name:        name,
		DisplayName: displayName,
		Unit:        unit,
		CostPerUnit: costPerUnit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cs.materialRepo.Create(ctx, tx, material); err != nil {
		cs.log.Error("CreateMaterial failed", "error", err)
		return nil, fmt.Errorf("create material: %w", err)
	}
	return material, nil
}

func (cs *catalogService) DeleteMaterial(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	return cs.materialRepo.Delete(ctx, tx, id)
}

func uuidField(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func numberField(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
