package config

import "time"

const (
	envPort            = "PORT"
	envStore           = "STORE"
	envMongoURI        = "MONGO_URI"
	envMongoDatabase   = "MONGO_DATABASE"
	envMongoCollection = "MONGO_COLLECTION"
	envMongoTimeout    = "MONGO_CONNECT_TIMEOUT"
	envConnectAttempts = "STORE_CONNECT_ATTEMPTS"
	envConnectBackoff  = "STORE_CONNECT_BACKOFF"
	envSQLitePath      = "SQLITE_PATH"
	envSeedFile        = "SEED_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultStore           = StoreMongo
	defaultMongoURI        = "mongodb://localhost:27017"
	defaultMongoDatabase   = "games"
	defaultMongoCollection = "games"
	// Covers both the initial connect and the startup ping.
	defaultMongoTimeout = 10 * Duration(time.Second)
	defaultSQLitePath   = "games.db"
	defaultAttempts     = 3
	defaultBackoff      = 500 * Duration(time.Millisecond)
	defaultMetricsPort  = "9090"
	defaultServiceName  = "games-api"
)

// Supported STORE values.
const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)
