package app

import (
	"gorm.io/gorm"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/repos"
)

type Repos struct {
	ProjectType          repos.ProjectTypeRepo
	Surface              repos.SurfaceRepo
	Scenario             repos.ScenarioRepo
	Output               repos.OutputRepo
	Material             repos.MaterialRepo
	Estimate             repos.EstimateRepo
	EstimateItem         repos.EstimateItemRepo
	EstimateItemMaterial repos.EstimateItemMaterialRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		ProjectType:          repos.NewProjectTypeRepo(db, log),
		Surface:              repos.NewSurfaceRepo(db, log),
		Scenario:             repos.NewScenarioRepo(db, log),
		Output:               repos.NewOutputRepo(db, log),
		Material:             repos.NewMaterialRepo(db, log),
		Estimate:             repos.NewEstimateRepo(db, log),
		EstimateItem:         repos.NewEstimateItemRepo(db, log),
		EstimateItemMaterial: repos.NewEstimateItemMaterialRepo(db, log),
	}
}
