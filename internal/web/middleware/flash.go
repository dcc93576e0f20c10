package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcoot/mtarp-portal/internal/model"
)

type contextKey string

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the notification carried over from the previous request.
// Returns nil if there is none.
func GetFlash(ctx context.Context) *model.Notification {
	flash, _ := ctx.Value(flashContextKey).(*model.Notification)
	return flash
}

// SetFlash stores a notification to be displayed on the next request.
// A nil notification is ignored. secure marks the cookie Secure.
func SetFlash(w http.ResponseWriter, n *model.Notification, secure bool) {
	if n == nil {
		return
	}
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears the flash cookie
func Flash(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *model.Notification

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseFlash decodes a cookie value. Anything malformed is dropped.
func parseFlash(value string) *model.Notification {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var n model.Notification
	if err := json.Unmarshal(data, &n); err != nil || n.Message == "" {
		return nil
	}
	return &n
}
