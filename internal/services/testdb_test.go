package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
	"github.com/brushline/estimator-backend/internal/types"
)

// newTestDB opens a per-test in-memory database. The shared-cache name is
// derived from the test name so parallel tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	err = gdb.AutoMigrate(
		&types.ProjectType{},
		&types.Surface{},
		&types.Scenario{},
		&types.Output{},
		&types.Material{},
		&types.Estimate{},
		&types.EstimateItem{},
		&types.EstimateItemMaterial{},
	)
	if err != nil {
		t.Fatalf("automigrate test database: %v", err)
	}
	return gdb
}

type testEnv struct {
	db       *gorm.DB
	catalog  CatalogService
	outputs  OutputService
	estimate EstimateService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := newTestDB(t)
	log := logger.NewNop()

	projectTypeRepo := repos.NewProjectTypeRepo(gdb, log)
	surfaceRepo := repos.NewSurfaceRepo(gdb, log)
	scenarioRepo := repos.NewScenarioRepo(gdb, log)
	outputRepo := repos.NewOutputRepo(gdb, log)
	materialRepo := repos.NewMaterialRepo(gdb, log)
	estimateRepo := repos.NewEstimateRepo(gdb, log)
	itemRepo := repos.NewEstimateItemRepo(gdb, log)
	itemMatRepo := repos.NewEstimateItemMaterialRepo(gdb, log)

	return &testEnv{
		db:      gdb,
		catalog: NewCatalogService(gdb, log, projectTypeRepo, surfaceRepo, scenarioRepo, materialRepo),
		outputs: NewOutputService(gdb, log, outputRepo),
		estimate: NewEstimateService(
			gdb,
			log,
			estimateRepo,
			itemRepo,
			itemMatRepo,
			projectTypeRepo,
			surfaceRepo,
			scenarioRepo,
			outputRepo,
			materialRepo,
		),
	}
}
