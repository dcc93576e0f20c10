package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mtarp-portal/internal/api/apierr"
	"github.com/mcoot/mtarp-portal/internal/api/handler"
	apimiddleware "github.com/mcoot/mtarp-portal/internal/api/middleware"
	"github.com/mcoot/mtarp-portal/internal/middleware"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *viewstate.Sessions
	ServerStats viewmodel.ServerStats
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	stateHandler := handler.NewStateHandler(cfg.Sessions, cfg.ServerStats, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Health check endpoint (no session)
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// State routes read the browser-session cookie but never issue one
	state := api.PathPrefix("/state").Subrouter()
	state.Use(middleware.ExistingSession())
	state.HandleFunc("", stateHandler.Get).Methods(http.MethodGet)
	state.HandleFunc("/tab", stateHandler.SelectTab).Methods(http.MethodPut)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Unknown API route"))
	})

	return r
}
