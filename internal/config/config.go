package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Store    string
	Connect  ConnectConfig
	Mongo    MongoConfig
	SQLite   SQLiteConfig
	SeedFile string
	Metrics  MetricsConfig
}

// dotEnvFile is loaded before reading the environment; variables already set win.
var dotEnvFile = ".env"

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	_ = loadDotEnv(dotEnvFile)
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Store:    storeEnvOrDefault(envStore, defaultStore),
		Connect:  loadConnect(),
		Mongo:    loadMongo(),
		SQLite:   loadSQLite(),
		SeedFile: envOrDefault(envSeedFile, ""),
		Metrics:  loadMetrics(),
	}
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
