package config

import "strings"

// MongoConfig addresses the document store.
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout Duration
}

// SQLiteConfig points at the embedded store file.
type SQLiteConfig struct {
	Path string
}

// ConnectConfig controls how often startup retries reaching the store.
type ConnectConfig struct {
	Attempts int
	Backoff  Duration
}

func loadConnect() ConnectConfig {
	return ConnectConfig{
		Attempts: intEnvOrDefault(envConnectAttempts, defaultAttempts),
		Backoff:  durationEnvOrDefault(envConnectBackoff, defaultBackoff),
	}
}

func loadMongo() MongoConfig {
	return MongoConfig{
		URI:            envOrDefault(envMongoURI, defaultMongoURI),
		Database:       envOrDefault(envMongoDatabase, defaultMongoDatabase),
		Collection:     envOrDefault(envMongoCollection, defaultMongoCollection),
		ConnectTimeout: durationEnvOrDefault(envMongoTimeout, defaultMongoTimeout),
	}
}

func loadSQLite() SQLiteConfig {
	return SQLiteConfig{
		Path: envOrDefault(envSQLitePath, defaultSQLitePath),
	}
}

// storeEnvOrDefault lower-cases the configured backend; unknown values are kept
// so the server can log them before falling back.
func storeEnvOrDefault(key, defaultValue string) string {
	return strings.ToLower(strings.TrimSpace(envOrDefault(key, defaultValue)))
}
