package viewstate

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/dependencies/clock"
	"github.com/mcoot/mtarp-portal/internal/metrics"
	"github.com/mcoot/mtarp-portal/internal/model"
)

// AuthClient is the subset of the endpoint client the controller needs
type AuthClient interface {
	Login(ctx context.Context, username, password string) authclient.Result
	Register(ctx context.Context, username, email, password string) authclient.Result
}

// LoadingHook observes the intermediate state while a request is in flight.
// It may be nil.
type LoadingHook func(model.ViewState)

// Controller applies user events to a page session's state and talks to the
// auth endpoint for the two network-backed operations
type Controller struct {
	client AuthClient
	clock  clock.Clock
	logger *slog.Logger
}

// NewController creates a new view-state Controller
func NewController(client AuthClient, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		client: client,
		clock:  clock,
		logger: logger,
	}
}

// SelectTab switches the active tab
func (c *Controller) SelectTab(state model.ViewState, tab model.Tab) model.ViewState {
	return c.apply(state, TabSelected{Tab: tab})
}

// EditLoginForm replaces the login form buffer without submitting it
func (c *Controller) EditLoginForm(state model.ViewState, form model.LoginForm) model.ViewState {
	return c.apply(state, LoginFormEdited{Form: form})
}

// EditRegisterForm replaces the registration form buffer without submitting it
func (c *Controller) EditRegisterForm(state model.ViewState, form model.RegisterForm) model.ViewState {
	return c.apply(state, RegisterFormEdited{Form: form})
}

// SubmitLogin sends the credentials to the endpoint once and folds the
// outcome into the state. Empty fields are submitted as-is.
func (c *Controller) SubmitLogin(ctx context.Context, state model.ViewState, form model.LoginForm, onLoading LoadingHook) model.ViewState {
	state = c.apply(state, LoginSubmitted{Form: form})
	if onLoading != nil {
		onLoading(state)
	}

	start := c.clock.Now()
	result := c.client.Login(ctx, form.Username, form.Password)
	c.observe(authclient.ActionLogin, form.Username, result, start)

	return c.apply(state, LoginCompleted{Result: result})
}

// SubmitRegistration sends the new account to the endpoint once. A successful
// registration does not log the user in.
func (c *Controller) SubmitRegistration(ctx context.Context, state model.ViewState, form model.RegisterForm, onLoading LoadingHook) model.ViewState {
	state = c.apply(state, RegisterSubmitted{Form: form})
	if onLoading != nil {
		onLoading(state)
	}

	start := c.clock.Now()
	result := c.client.Register(ctx, form.Username, form.Email, form.Password)
	c.observe(authclient.ActionRegister, form.Username, result, start)

	return c.apply(state, RegisterCompleted{Result: result})
}

// Logout drops the Session locally; no network call is made
func (c *Controller) Logout(state model.ViewState) model.ViewState {
	return c.apply(state, LoggedOut{})
}

func (c *Controller) apply(state model.ViewState, event Event) model.ViewState {
	next := Reduce(state, event)
	next.UpdatedAt = c.clock.Now()
	return next
}

// observe logs and records one endpoint call. Passwords never reach the log.
func (c *Controller) observe(action, username string, result authclient.Result, start time.Time) {
	duration := c.clock.Now().Sub(start)
	metrics.ObserveAuthRequest(action, result.Outcome(), duration)

	attrs := []any{
		slog.String("action", action),
		slog.String("username", username),
		slog.String("outcome", result.Outcome()),
		slog.Duration("duration", duration),
	}

	switch r := result.(type) {
	case authclient.TransportError:
		c.logger.Warn("auth endpoint unreachable", append(attrs, slog.String("error", r.Error()))...)
	case authclient.AppError:
		c.logger.Info("auth request rejected", append(attrs, slog.String("reason", r.Message))...)
	default:
		c.logger.Info("auth request succeeded", attrs...)
	}
}
