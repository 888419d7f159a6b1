// Package main Casino Bot API
//
// Casino Bot is the economy and mini-game core behind a chat community:
// per-user coin accounts, casino games (coinflip, dice, dice duels,
// slots, roulette and blackjack) and a monthly kill leaderboard, all
// persisted in a flat JSON ledger.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	"github.com/dkazmin/casinobot/internal/app"
)

// @title Casino Bot API Service
// @version 1.0
// @description Casino Bot is the economy and mini-game core behind a chat community.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
