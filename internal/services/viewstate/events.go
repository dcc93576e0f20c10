package viewstate

import (
	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/model"
)

// Event is an input to Reduce
type Event interface {
	isEvent()
}

// TabSelected switches the active tab. The transition is unguarded; gating of
// the profile tab happens at render time.
type TabSelected struct {
	Tab model.Tab
}

// LoginFormEdited replaces the login form buffer
type LoginFormEdited struct {
	Form model.LoginForm
}

// RegisterFormEdited replaces the registration form buffer
type RegisterFormEdited struct {
	Form model.RegisterForm
}

// LoginSubmitted marks the start of a login request
type LoginSubmitted struct {
	Form model.LoginForm
}

// LoginCompleted carries the outcome of a login request
type LoginCompleted struct {
	Result authclient.Result
}

// RegisterSubmitted marks the start of a registration request
type RegisterSubmitted struct {
	Form model.RegisterForm
}

// RegisterCompleted carries the outcome of a registration request
type RegisterCompleted struct {
	Result authclient.Result
}

// LoggedOut ends the Session locally
type LoggedOut struct{}

func (TabSelected) isEvent()        {}
func (LoginFormEdited) isEvent()    {}
func (RegisterFormEdited) isEvent() {}
func (LoginSubmitted) isEvent()     {}
func (LoginCompleted) isEvent()     {}
func (RegisterSubmitted) isEvent()  {}
func (RegisterCompleted) isEvent()  {}
func (LoggedOut) isEvent()          {}

// Reduce returns the state that follows state after event. It is pure: the
// input is never modified and no I/O happens.
func Reduce(state model.ViewState, event Event) model.ViewState {
	next := state

	switch e := event.(type) {
	case TabSelected:
		next.Tab = e.Tab

	case LoginFormEdited:
		next.Login = e.Form

	case RegisterFormEdited:
		next.Register = e.Form

	case LoginSubmitted:
		next.Login = e.Form
		next.Loading = true
		next.Notification = nil

	case LoginCompleted:
		next.Loading = false
		switch r := e.Result.(type) {
		case authclient.Ok:
			next.Session = sessionFromResponse(r.Response, state.Login.Username)
			next.Tab = model.TabProfile
			next.Login = model.LoginForm{}
			next.Notification = loginSuccess(r.Response.Message, next.Session.User.Username)
		case authclient.AppError:
			next.Notification = loginRejected(r.Message)
		default:
			next.Notification = connectionFailed()
		}

	case RegisterSubmitted:
		next.Register = e.Form
		next.Loading = true
		next.Notification = nil

	case RegisterCompleted:
		next.Loading = false
		switch r := e.Result.(type) {
		case authclient.Ok:
			next.Register = model.RegisterForm{}
			next.Tab = model.TabHome
			next.Notification = registerSuccess(r.Response.Message)
		case authclient.AppError:
			next.Notification = registerRejected(r.Message)
		default:
			next.Notification = connectionFailed()
		}

	case LoggedOut:
		next.Session = nil
		next.Login = model.LoginForm{}
		next.Tab = model.TabHome
		next.Notification = loggedOut()
	}

	return next
}

// sessionFromResponse copies the login payload into a new Session.
// The achievement list is always a fresh, non-nil slice.
func sessionFromResponse(resp authclient.Response, fallbackUsername string) *model.Session {
	session := &model.Session{
		Achievements: make([]model.Achievement, len(resp.Achievements)),
	}
	copy(session.Achievements, resp.Achievements)

	if resp.User != nil {
		session.User = *resp.User
	} else {
		session.User = model.User{Username: fallbackUsername}
	}
	if resp.Profile != nil {
		profile := *resp.Profile
		session.Profile = &profile
	}
	return session
}
