package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/games-api/internal/app/games"
	domaingames "github.com/preston-bernstein/games-api/internal/domain/games"
	"github.com/preston-bernstein/games-api/internal/logging"
)

const (
	maxBodyBytes = 1 << 20
	readyTimeout = 2 * time.Second
)

// Handler wires HTTP routes to the games service.
type Handler struct {
	svc    *games.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *games.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// createGameRequest is the accepted POST body; unknown fields are ignored.
type createGameRequest struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"releaseDate"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic by pinging the store.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ListGames returns every stored game.
func (h *Handler) ListGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	list, err := h.svc.Games(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to list games", logger)
		return
	}
	logging.Info(logger, "listed games", slog.Int(logging.FieldCount, len(list)))
	writeJSON(w, nethttp.StatusOK, list, logger)
}

// CreateGame stores a new game. Validation failures surface as 500.
func (h *Handler) CreateGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req createGameRequest
	body := nethttp.MaxBytesReader(w, r.Body, maxBodyBytes)
	// An empty body is treated as an empty game and rejected by validation.
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logging.Warn(logger, "invalid create body", slog.Any("error", err))
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}

	created, err := h.svc.CreateGame(r.Context(), domaingames.Game{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		if errors.Is(err, domaingames.ErrInvalidGame) {
			logging.Warn(logger, "game rejected", slog.Any("error", err))
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to create game", logger)
		return
	}

	logging.Info(logger, "game created", slog.String(logging.FieldGameID, created.ID))
	writeJSON(w, nethttp.StatusCreated, created, logger)
}

// GetGame returns a specific game if present.
func (h *Handler) GetGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	game, err := h.svc.GameByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeLookupError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, logger)
}

// DeleteGame removes a game and replies with an empty body.
func (h *Handler) DeleteGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteGame(r.Context(), id); err != nil {
		h.writeLookupError(w, r, err, logger)
		return
	}
	logging.Info(logger, "game deleted", slog.String(logging.FieldGameID, id))
	writeNoContent(w)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) writeLookupError(w nethttp.ResponseWriter, r *nethttp.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domaingames.ErrInvalidID):
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", logger)
	case errors.Is(err, domaingames.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "game not found", logger)
	default:
		writeError(w, r, nethttp.StatusInternalServerError, "store unavailable", logger)
	}
}
