package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mtarp-portal/internal/middleware"
	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	webmiddleware "github.com/mcoot/mtarp-portal/internal/web/middleware"
)

// AuthHandler handles the login, registration and logout forms
type AuthHandler struct {
	sessions     *viewstate.Sessions
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. cookieSecure marks the flash
// cookie Secure.
func NewAuthHandler(sessions *viewstate.Sessions, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:     sessions,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Login submits the login form. Fields are passed through untouched; the
// auth endpoint does all validation.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		webmiddleware.RenderError(w, r, http.StatusBadRequest, "Invalid form data.")
		return
	}

	form := model.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	outcome, err := h.sessions.SubmitLogin(r.Context(), middleware.GetSessionID(r.Context()), form)
	h.finish(w, r, outcome, err)
}

// Register submits the registration form
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		webmiddleware.RenderError(w, r, http.StatusBadRequest, "Invalid form data.")
		return
	}

	form := model.RegisterForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	outcome, err := h.sessions.SubmitRegistration(r.Context(), middleware.GetSessionID(r.Context()), form)
	h.finish(w, r, outcome, err)
}

// Logout ends the Session of the browser session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.sessions.Logout(r.Context(), middleware.GetSessionID(r.Context()))
	h.finish(w, r, outcome, err)
}

// finish turns an outcome into a flash and redirects back to the page
func (h *AuthHandler) finish(w http.ResponseWriter, r *http.Request, outcome viewstate.Outcome, err error) {
	if err != nil {
		h.logger.Error("failed to apply auth event",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		webmiddleware.RenderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	webmiddleware.SetFlash(w, outcome.Notification, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
