package app

import (
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/utils"
)

type Config struct {
	Port          string
	AdminPassword string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:          utils.GetEnv("PORT", "8080", log),
		AdminPassword: utils.GetEnv("ADMIN_PASSWORD", "", log),
	}
}
