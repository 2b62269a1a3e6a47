package config_fx

import (
	"go.uber.org/fx"

	"naturapi/internal/config"
)

var Module = fx.Provide(config.Load)
