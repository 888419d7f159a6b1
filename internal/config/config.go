package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig `mapstructure:"server"`
	Store      StoreConfig  `mapstructure:"store"`
	Game       GameConfig   `mapstructure:"game"`
	JWT        JWTConfig    `mapstructure:"jwt"`
	Log        LogConfig    `mapstructure:"log"`
	Authorized []string     `mapstructure:"authorized"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// StoreConfig selects and configures the ledger store backend.
// Backend is "file" or "redis".
type StoreConfig struct {
	Backend       string        `mapstructure:"backend"`
	Path          string        `mapstructure:"path"`
	FlushInterval time.Duration `mapstructure:"flushInterval"`
	Redis         RedisConfig   `mapstructure:"redis"`
	Backup        BackupConfig  `mapstructure:"backup"`
}

// RedisConfig holds redis backend configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// BackupConfig holds remote snapshot backup configuration. Disabled when
// URL is empty.
type BackupConfig struct {
	URL      string        `mapstructure:"url"`
	APIKey   string        `mapstructure:"api_key"`
	Interval time.Duration `mapstructure:"interval"`
}

// GameConfig holds game engine tuning
type GameConfig struct {
	SessionTimeout time.Duration `mapstructure:"sessionTimeout"`
	SweepInterval  time.Duration `mapstructure:"sweepInterval"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("CASINOBOT_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
