package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/mtarp-portal/internal/middleware"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	"github.com/mcoot/mtarp-portal/internal/web/handler"
	webmiddleware "github.com/mcoot/mtarp-portal/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *viewstate.Sessions
	ServerStats viewmodel.ServerStats
	StaticDir   string // Path to static files directory; empty disables /static/
	// CookieSecure marks the browser-session and flash cookies Secure
	CookieSecure bool
	// DisableMetrics leaves /metrics unrouted
	DisableMetrics bool
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(webmiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	homeHandler := handler.NewHomeHandler(cfg.Sessions, cfg.ServerStats, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.Sessions, cfg.CookieSecure, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	if !cfg.DisableMetrics {
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	// Page routes run inside a browser session
	page := r.NewRoute().Subrouter()
	page.Use(webmiddleware.Flash(cfg.CookieSecure))
	page.Use(middleware.ViewSession(cfg.Sessions, cfg.CookieSecure))

	page.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	page.HandleFunc("/tab/{tab}", homeHandler.SelectTab).Methods(http.MethodPost)
	page.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	page.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	page.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		webmiddleware.RenderError(w, req, http.StatusNotFound, "Page not found.")
	})

	return r
}
