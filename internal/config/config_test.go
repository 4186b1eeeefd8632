package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Store != StoreMongo {
		t.Fatalf("expected default store %s, got %s", StoreMongo, cfg.Store)
	}
	if cfg.Mongo.URI != defaultMongoURI {
		t.Fatalf("expected default mongo uri %s, got %s", defaultMongoURI, cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "games" || cfg.Mongo.Collection != "games" {
		t.Fatalf("expected default database/collection games/games, got %s/%s", cfg.Mongo.Database, cfg.Mongo.Collection)
	}
	if cfg.Mongo.ConnectTimeout != defaultMongoTimeout {
		t.Fatalf("expected default connect timeout %s, got %s", defaultMongoTimeout, cfg.Mongo.ConnectTimeout)
	}
	if cfg.SQLite.Path != defaultSQLitePath {
		t.Fatalf("expected default sqlite path %s, got %s", defaultSQLitePath, cfg.SQLite.Path)
	}
	if cfg.SeedFile != "" {
		t.Fatalf("expected no seed file by default, got %s", cfg.SeedFile)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envStore, " SQLite ")
	t.Setenv(envMongoURI, "mongodb://db:27017")
	t.Setenv(envMongoDatabase, "test")
	t.Setenv(envMongoCollection, "games_test")
	t.Setenv(envMongoTimeout, "3s")
	t.Setenv(envSQLitePath, "/tmp/games.db")
	t.Setenv(envSeedFile, "seed.json")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Store != StoreSQLite {
		t.Fatalf("expected normalized store sqlite, got %q", cfg.Store)
	}
	if cfg.Mongo.URI != "mongodb://db:27017" || cfg.Mongo.Database != "test" || cfg.Mongo.Collection != "games_test" {
		t.Fatalf("expected mongo overrides, got %+v", cfg.Mongo)
	}
	if cfg.Mongo.ConnectTimeout != 3*time.Second {
		t.Fatalf("expected connect timeout 3s, got %s", cfg.Mongo.ConnectTimeout)
	}
	if cfg.SQLite.Path != "/tmp/games.db" {
		t.Fatalf("expected sqlite path override, got %s", cfg.SQLite.Path)
	}
	if cfg.SeedFile != "seed.json" {
		t.Fatalf("expected seed file override, got %s", cfg.SeedFile)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envMongoTimeout, "not-a-duration")

	cfg := Load()

	if cfg.Mongo.ConnectTimeout != defaultMongoTimeout {
		t.Fatalf("expected default connect timeout on invalid value, got %s", cfg.Mongo.ConnectTimeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envMongoTimeout, "0s")

	cfg := Load()

	if cfg.Mongo.ConnectTimeout != defaultMongoTimeout {
		t.Fatalf("expected default connect timeout on non-positive value, got %s", cfg.Mongo.ConnectTimeout)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "MONGO_DATABASE=from_file\nMONGO_COLLECTION=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	original := dotEnvFile
	dotEnvFile = path
	defer func() { dotEnvFile = original }()

	t.Setenv(envMongoDatabase, "from_env")
	// Register cleanup for the variable the file introduces.
	t.Setenv(envMongoCollection, "")
	os.Unsetenv(envMongoCollection)

	cfg := Load()

	if cfg.Mongo.Database != "from_env" {
		t.Fatalf("expected environment to win over .env, got %s", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "from_file" {
		t.Fatalf("expected .env value to be applied, got %s", cfg.Mongo.Collection)
	}
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if err := loadDotEnv(""); err != nil {
		t.Fatalf("expected empty path to be ignored, got %v", err)
	}
}

func TestLoadConnectRetrySettings(t *testing.T) {
	cfg := Load()
	if cfg.Connect.Attempts != defaultAttempts || cfg.Connect.Backoff != defaultBackoff {
		t.Fatalf("unexpected connect defaults %+v", cfg.Connect)
	}

	t.Setenv(envConnectAttempts, "7")
	t.Setenv(envConnectBackoff, "2s")
	cfg = Load()
	if cfg.Connect.Attempts != 7 || cfg.Connect.Backoff != 2*time.Second {
		t.Fatalf("expected connect overrides, got %+v", cfg.Connect)
	}

	t.Setenv(envConnectAttempts, "-1")
	cfg = Load()
	if cfg.Connect.Attempts != defaultAttempts {
		t.Fatalf("expected invalid attempts to fall back, got %d", cfg.Connect.Attempts)
	}
}
