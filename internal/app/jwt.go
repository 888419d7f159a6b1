package app

import (
	"github.com/dkazmin/casinobot/internal/config"
	"github.com/dkazmin/casinobot/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}
