package config_fx

import (
	"go.uber.org/fx"
	"match2b/internal/config"
)

var Module = fx.Provide(config.Load)
