package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dkazmin/casinobot/internal/config"
	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/infrastructure/repository"
	"github.com/dkazmin/casinobot/internal/infrastructure/store"
	"github.com/spf13/viper"
)

// legacyBoard is the wire shape of the old bot's leaderboard export:
// month key to player to [regular, team] pairs.
type legacyBoard map[string]map[string][2]int64

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
		input      = flag.String("input", "./leaderboard.json", "Path to legacy leaderboard export")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read legacy export: %v", err)
	}

	var legacy legacyBoard
	if err := json.Unmarshal(data, &legacy); err != nil {
		log.Fatalf("Failed to parse legacy export: %v", err)
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

	killRepo := repository.NewKillRepository(ledger)

	log.Printf("Importing %d months from %s...", len(legacy), *input)
	for month, players := range legacy {
		board, err := killRepo.GetMonth(month)
		if err != nil {
			log.Fatalf("Failed to load month %s: %v", month, err)
		}
		for player, counts := range players {
			stats, ok := board[player]
			if !ok {
				stats = &domain.KillStats{}
				board[player] = stats
			}
			stats.Regular += counts[0]
			stats.Team += counts[1]
		}
		if err := killRepo.SaveMonth(month, board); err != nil {
			log.Fatalf("Failed to save month %s: %v", month, err)
		}
	}

	if err := ledger.Close(context.Background()); err != nil {
		log.Fatalf("Failed to flush ledger: %v", err)
	}
	log.Println("Legacy leaderboard import completed successfully")
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
