package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/dkazmin/casinobot/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Casino Bot Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	if err := a.setupViper(*path); err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitLedgerStore,
			a.InitUserLockManager,
			a.InitRepository,
			a.InitJWTService,
			a.InitAccountUseCase,
			a.InitCasinoUseCase,
			a.InitKillUseCase,
			a.InitSweeper,
			a.InitErrorHandler,
			a.InitAccountHandler,
			a.InitKillsHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(
			a.RegisterStore,
			a.RegisterSweeper,
			a.RegisterHTTPServer,
		),
	)

	app.Run()
}
