package app

import (
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/middleware"
)

type Middleware struct {
	AdminGate *middleware.AdminGate
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		AdminGate: middleware.NewAdminGate(log, cfg.AdminPassword),
	}
}
