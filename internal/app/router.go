package app

import (
	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/middleware"
	"github.com/brushline/estimator-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		HealthHandler:      handlerset.Health,
		ProjectTypeHandler: handlerset.ProjectType,
		SurfaceHandler:     handlerset.Surface,
		ScenarioHandler:    handlerset.Scenario,
		OutputHandler:      handlerset.Output,
		MaterialHandler:    handlerset.Material,
		EstimateHandler:    handlerset.Estimate,
		AdminGate:          middlewareset.AdminGate,
		RequestLogger:      middleware.RequestLogger(log),
	})
}
