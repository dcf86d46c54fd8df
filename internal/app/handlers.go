package app

import (
	"github.com/brushline/estimator-backend/internal/handlers"
	"github.com/brushline/estimator-backend/internal/logger"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	ProjectType *handlers.ProjectTypeHandler
	Surface     *handlers.SurfaceHandler
	Scenario    *handlers.ScenarioHandler
	Output      *handlers.OutputHandler
	Material    *handlers.MaterialHandler
	Estimate    *handlers.EstimateHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:      handlers.NewHealthHandler(),
		ProjectType: handlers.NewProjectTypeHandler(log, serviceset.Catalog),
		Surface:     handlers.NewSurfaceHandler(log, serviceset.Catalog),
		Scenario:    handlers.NewScenarioHandler(log, serviceset.Catalog),
		Output:      handlers.NewOutputHandler(log, serviceset.Output),
		Material:    handlers.NewMaterialHandler(log, serviceset.Catalog),
		Estimate:    handlers.NewEstimateHandler(log, serviceset.Estimate),
	}
}
