package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dkazmin/casinobot/internal/config"
	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/infrastructure/repository"
	"github.com/dkazmin/casinobot/internal/infrastructure/store"
	"github.com/spf13/viper"
)

// demoUsers get accounts with a spread of balances so a fresh install has
// something to show on day one.
var demoUsers = map[string]int64{
	"alice": 1500,
	"bob":   750,
	"carol": domain.StartingBalance,
}

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logger.NewLogger(config.GetEnvironment(), cfg.Log.Level)

	path := cfg.Store.Path
	if path == "" {
		path = "./data/ledger.json"
	}
	ledger, err := store.NewFileStore(path, time.Minute, zlog)
	if err != nil {
		log.Fatalf("Failed to open ledger: %v", err)
	}

	accountRepo := repository.NewAccountRepository(ledger)

	log.Println("Starting ledger seeding...")
	for userID, balance := range demoUsers {
		account, err := accountRepo.GetOrCreate(userID)
		if err != nil {
			log.Fatalf("Failed to seed account %s: %v", userID, err)
		}
		if account.Balance != balance {
			account.ApplyDelta(balance-account.Balance, 0, 0)
			if err := accountRepo.Save(account); err != nil {
				log.Fatalf("Failed to save account %s: %v", userID, err)
			}
		}
	}

	if err := ledger.Close(context.Background()); err != nil {
		log.Fatalf("Failed to flush ledger: %v", err)
	}
	log.Println("Ledger seeding completed successfully")
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &cfg, nil
}
