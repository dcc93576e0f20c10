package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mtarp-portal/internal/api/apierr"
	"github.com/mcoot/mtarp-portal/internal/middleware"
)

// Recovery turns a panic in an API handler into a JSON INTERNAL_ERROR body
// so clients never see the plain-text default
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Cache-Control", "no-store")
	apierr.WriteError(w, apierr.NewInternalError())
}
