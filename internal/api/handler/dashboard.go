// Package handler provides HTTP handlers for the lobby board.
package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lobbyboard/lobbyboard/internal/api/middleware"
	"github.com/lobbyboard/lobbyboard/internal/api/models"
	"github.com/lobbyboard/lobbyboard/internal/api/response"
	"github.com/lobbyboard/lobbyboard/internal/board"
	"github.com/lobbyboard/lobbyboard/internal/board/views"
)

// DashboardHandler serves the dashboard page and its board snapshots.
type DashboardHandler struct {
	board  *board.Board
	logger zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(b *board.Board, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		board:  b,
		logger: logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Page handles GET / and renders the full dashboard page. The page carries
// its own refresh script, so a single render is enough; later updates come
// through Snapshot.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	snap := h.board.Snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderDashboard(w, snap); err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("failed to render dashboard")
		response.InternalError(w, r, "failed to render dashboard")
	}
}

// Snapshot handles GET /v1/board and returns the current board as JSON.
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.board.Snapshot()
	response.JSON(w, r, http.StatusOK, models.NewBoardSnapshot(snap))
}
