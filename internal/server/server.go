package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/games-api/internal/app/games"
	"github.com/preston-bernstein/games-api/internal/config"
	httpserver "github.com/preston-bernstein/games-api/internal/http"
	"github.com/preston-bernstein/games-api/internal/http/handlers"
	"github.com/preston-bernstein/games-api/internal/http/middleware"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
	"github.com/preston-bernstein/games-api/internal/seed"
	"github.com/preston-bernstein/games-api/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	gamesService  *games.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the store backend selected by cfg.Store.
func New(cfg config.Config, logger *slog.Logger) *Server {
	st := newStoreFactory(logger).build(cfg)
	return newServerWithStore(cfg, logger, st)
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, st store.Store) *Server {
	return newServerWithMetrics(cfg, logger, st, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, st store.Store, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if st == nil {
		st = newStoreFactory(logger).build(cfg)
	}
	gameSvc := games.NewService(st, st.Name(), logger, recorder)
	httpSrv := buildHTTPServer(cfg, gameSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		gamesService:  gameSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, st store.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		store:        st,
		gamesService: games.NewService(st, st.Name(), logger, nil),
		httpServer:   httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(gameSvc, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(":"+cfg.Port, wrapped)
}

// Run connects the store, seeds it, starts the HTTP servers, then waits for
// context cancellation to shut down gracefully. It returns early with an error
// when the store cannot be reached.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	if err := s.connectStore(ctx); err != nil {
		s.stopTelemetry(context.Background())
		return err
	}
	s.seedStore(ctx)

	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
	return nil
}

func (s *Server) connectStore(ctx context.Context) error {
	connector := store.NewConnector(s.logger, s.cfg.Connect.Attempts, s.cfg.Connect.Backoff, storeConnectTimeout)

	name := s.store.Name()
	if err := connector.Connect(ctx, s.store); err != nil {
		logging.Error(s.logger, "store connect failed", err, slog.String(logging.FieldStore, name))
		return fmt.Errorf("connect %s store: %w", name, err)
	}
	logging.Info(s.logger, "store connected", slog.String(logging.FieldStore, name))
	return nil
}

// seedStore loads SEED_FILE into an empty store; failures are logged and ignored.
func (s *Server) seedStore(ctx context.Context) {
	if s.cfg.SeedFile == "" {
		return
	}
	if _, err := seed.FromFile(ctx, s.gamesService, s.cfg.SeedFile, s.logger); err != nil {
		logging.Error(s.logger, "seeding failed", err, slog.String("file", s.cfg.SeedFile))
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) stopTelemetry(ctx context.Context) {
	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
}

// gracefulShutdown drains HTTP before disconnecting the store so in-flight
// requests can finish their store calls.
func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.stopTelemetry(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if err := s.store.Disconnect(shutdownCtx); err != nil {
		logging.Error(s.logger, "store disconnect failed", err, slog.String(logging.FieldStore, s.store.Name()))
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
