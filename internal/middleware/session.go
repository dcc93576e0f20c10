package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// SessionCookieName identifies the browser session
	SessionCookieName = "mtarp_session"

	sessionContextKey contextKey = "session_id"
	sessionMaxAge                = 86400
)

// IDSource issues new browser-session ids
type IDSource interface {
	NewID() string
}

// GetSessionID returns the browser-session id for the request.
// Returns "" outside the ViewSession middleware.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}

// WithSessionID returns a context carrying id
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionContextKey, id)
}

// ViewSession makes sure every request belongs to a browser session. A
// missing or malformed cookie is replaced with a fresh id.
func ViewSession(ids IDSource, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := readSessionID(r)
			if id == "" {
				id = ids.NewID()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   sessionMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// ExistingSession reads the browser-session id without issuing a new one.
// Requests without a valid cookie continue with an empty id.
func ExistingSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), readSessionID(r))))
		})
	}
}

func readSessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return ""
	}
	return cookie.Value
}
