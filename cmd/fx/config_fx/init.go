package config_fx

import (
	"go.uber.org/fx"
	"traveldna/internal/config"
)

var Module = fx.Provide(config.Load)
