package auth_fx

import (
	"go.uber.org/fx"
	"match2b/internal/config"
	"match2b/pkg/utils"
)

var Module = fx.Provide(provideTokenVerifier)

func provideTokenVerifier(cfg *config.Config) *utils.TokenVerifier {
	return utils.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}
