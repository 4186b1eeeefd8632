package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Vars so tests can shorten them.
var (
	shutdownTimeout = 10 * time.Second
	// Bounds each store connect attempt.
	storeConnectTimeout = 15 * time.Second
)
