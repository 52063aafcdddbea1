package configfx

import (
	"go.uber.org/fx"

	"renthub/internal/config"
	"renthub/pkg/logger"
)

var Module = fx.Provide(
	config.LoadConfig,
	logger.NewLogger)
