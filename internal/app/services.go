package app

import (
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type Services struct {
	Catalog  services.CatalogService
	Output   services.OutputService
	Estimate services.EstimateService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Catalog: services.NewCatalogService(
			db,
			log,
			reposet.ProjectType,
			reposet.Surface,
			reposet.Scenario,
			reposet.Material,
		),
		Output: services.NewOutputService(db, log, reposet.Output),
		Estimate: services.NewEstimateService(
			db,
			log,
			reposet.Estimate,
			reposet.EstimateItem,
			reposet.EstimateItemMaterial,
			reposet.ProjectType,
			reposet.Surface,
			reposet.Scenario,
			reposet.Output,
			reposet.Material,
		),
	}
}
