package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/types"
	"github.com/brushline/estimator-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects to Postgres when one is configured and otherwise falls back to
// an in-memory SQLite database with the same schema. The fallback is
// single-process and non-persistent; it exists so the app runs locally with
// no database at all.
func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	if usePostgres() {
		return newPostgres(serviceLog)
	}
	serviceLog.Warn("No Postgres configured, using in-memory database")
	return newMemory(serviceLog)
}

func usePostgres() bool {
	if _, ok := os.LookupEnv("POSTGRES_URL"); ok {
		return true
	}
	if _, ok := os.LookupEnv("POSTGRES_HOST"); ok {
		return true
	}
	return false
}

func newPostgres(log *logger.Logger) (*Service, error) {
	dsn := utils.GetEnv("POSTGRES_URL", "", log)
	if dsn == "" {
		postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
		postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
		postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		postgresName := utils.GetEnv("POSTGRES_NAME", "estimator", log)
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)
	}

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return &Service{db: db, log: log}, nil
}

func newMemory(log *logger.Logger) (*Service, error) {
	// _foreign_keys=on applies to every pooled connection; the catalog
	// cascades depend on it.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		log.Error("Failed to open in-memory database", "error", err)
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	return &Service{db: db, log: log}, nil
}

// AutoMigrateAll creates the eight estimator tables. Parent/child catalog
// tables carry ON DELETE CASCADE constraints from the model tags, so deleting
// a project type removes its surfaces, scenarios, and outputs in one call.
func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating estimator tables...")
	err := s.db.AutoMigrate(
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
		s.log.Error("Auto migration failed for estimator tables", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
