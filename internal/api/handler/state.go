package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mcoot/mtarp-portal/internal/api/apierr"
	"github.com/mcoot/mtarp-portal/internal/api/request"
	"github.com/mcoot/mtarp-portal/internal/api/response"
	"github.com/mcoot/mtarp-portal/internal/middleware"
	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

// StateHandler exposes the caller's page session as JSON
type StateHandler struct {
	sessions *viewstate.Sessions
	stats    viewmodel.ServerStats
	logger   *slog.Logger
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(sessions *viewstate.Sessions, stats viewmodel.ServerStats, logger *slog.Logger) *StateHandler {
	return &StateHandler{
		sessions: sessions,
		stats:    stats,
		logger:   logger,
	}
}

// Get returns the normalized state of the caller's page session
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.existingSession(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StateFromModel(state, h.stats))
}

// SelectTab switches the active tab of the caller's page session
func (h *StateHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req request.SelectTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	tab, err := model.ParseTab(req.Tab)
	if err != nil {
		WriteError(w, err)
		return
	}

	id, err := h.existingSession(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	outcome, err := h.sessions.SelectTab(r.Context(), id, tab)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StateFromModel(outcome.State, h.stats))
}

// existingSession resolves the caller's page session. The API never creates
// one; the browser must have loaded the page first.
func (h *StateHandler) existingSession(r *http.Request) (string, error) {
	id := middleware.GetSessionID(r.Context())
	if id == "" {
		return "", model.ErrViewStateNotFound
	}
	exists, err := h.sessions.Exists(r.Context(), id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", model.ErrViewStateNotFound
	}
	return id, nil
}

func (h *StateHandler) fail(w http.ResponseWriter, err error) {
	h.logger.Error("state request failed", slog.String("error", err.Error()))
	WriteError(w, apierr.NewInternalError())
}
