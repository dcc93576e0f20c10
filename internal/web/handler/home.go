package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mtarp-portal/internal/middleware"
	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	webmiddleware "github.com/mcoot/mtarp-portal/internal/web/middleware"
	"github.com/mcoot/mtarp-portal/internal/web/templates/pages"
)

// HomeHandler renders the single page and handles tab switches
type HomeHandler struct {
	sessions *viewstate.Sessions
	stats    viewmodel.ServerStats
	logger   *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(sessions *viewstate.Sessions, stats viewmodel.ServerStats, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		sessions: sessions,
		stats:    stats,
		logger:   logger,
	}
}

// Home renders the page for the browser session. A valid ?tab= query
// selects that tab first; an invalid one is ignored.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	var state model.ViewState
	var err error
	if tab, parseErr := model.ParseTab(r.URL.Query().Get("tab")); parseErr == nil {
		var outcome viewstate.Outcome
		outcome, err = h.sessions.SelectTab(r.Context(), id, tab)
		state = outcome.State
	} else {
		state, err = h.sessions.Get(r.Context(), id)
	}
	if err != nil {
		h.logger.Error("failed to load view state", slog.String("error", err.Error()))
		webmiddleware.RenderError(w, r, http.StatusInternalServerError, "Could not load the page. Please try again.")
		return
	}

	page := viewmodel.NewPage(state, h.stats)
	flash := webmiddleware.GetFlash(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pages.Page(page, flash).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}

// SelectTab switches the active tab and redirects back to the page
func (h *HomeHandler) SelectTab(w http.ResponseWriter, r *http.Request) {
	tab, err := model.ParseTab(mux.Vars(r)["tab"])
	if err != nil {
		webmiddleware.RenderError(w, r, http.StatusBadRequest, "Unknown tab.")
		return
	}

	id := middleware.GetSessionID(r.Context())
	if _, err := h.sessions.SelectTab(r.Context(), id, tab); err != nil {
		h.logger.Error("failed to select tab", slog.String("error", err.Error()))
		webmiddleware.RenderError(w, r, http.StatusInternalServerError, "Could not switch tabs. Please try again.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
