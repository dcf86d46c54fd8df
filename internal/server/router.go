package server

import (
	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/handlers"
	"github.com/brushline/estimator-backend/internal/middleware"
)

type RouterConfig struct {
	HealthHandler      *handlers.HealthHandler
	ProjectTypeHandler *handlers.ProjectTypeHandler
	SurfaceHandler     *handlers.SurfaceHandler
	ScenarioHandler    *handlers.ScenarioHandler
	OutputHandler      *handlers.OutputHandler
	MaterialHandler    *handlers.MaterialHandler
	EstimateHandler    *handlers.EstimateHandler
	AdminGate          *middleware.AdminGate
	RequestLogger      gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	if cfg.RequestLogger != nil {
		r.Use(cfg.RequestLogger)
	}
	r.Use(middleware.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")

	// Catalog reads stay open; mutations sit behind the admin gate.
	api.GET("/project-types", cfg.ProjectTypeHandler.List)
	api.GET("/surfaces", cfg.SurfaceHandler.List)
	api.GET("/scenarios", cfg.ScenarioHandler.List)
	api.GET("/outputs", cfg.OutputHandler.Get)
	api.GET("/materials", cfg.MaterialHandler.List)

	admin := api.Group("/")
	if cfg.AdminGate != nil {
		admin.Use(cfg.AdminGate.Require())
	}
	admin.POST("/project-types", cfg.ProjectTypeHandler.Create)
	admin.DELETE("/project-types", cfg.ProjectTypeHandler.Delete)
	admin.POST("/surfaces", cfg.SurfaceHandler.Create)
	admin.DELETE("/surfaces", cfg.SurfaceHandler.Delete)
	admin.POST("/scenarios", cfg.ScenarioHandler.Create)
	admin.DELETE("/scenarios", cfg.ScenarioHandler.Delete)
	admin.POST("/outputs", cfg.OutputHandler.CreateOrUpdate)
	admin.DELETE("/outputs", cfg.OutputHandler.Delete)
	admin.POST("/materials", cfg.MaterialHandler.Create)
	admin.DELETE("/materials", cfg.MaterialHandler.Delete)

	// Estimates
	api.GET("/estimates", cfg.EstimateHandler.List)
	api.POST("/estimates", cfg.EstimateHandler.Create)
	api.GET("/estimates/:id", cfg.EstimateHandler.Get)
	api.GET("/estimates/:id/export", cfg.EstimateHandler.Export)
	api.POST("/estimate-items", cfg.EstimateHandler.CreateItem)
	api.POST("/estimate-item-materials", cfg.EstimateHandler.AddItemMaterial)

	return r
}
