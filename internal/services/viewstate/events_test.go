package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/testutil"
)

func loggedInState() model.ViewState {
	state := model.NewViewState()
	state.Tab = model.TabProfile
	state.Session = testutil.SampleSession()
	return state
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	state := loggedInState()
	state.Login = model.LoginForm{Username: "phoenix"}

	_ = Reduce(state, LoggedOut{})

	assert.NotNil(t, state.Session)
	assert.Equal(t, model.TabProfile, state.Tab)
	assert.Equal(t, "phoenix", state.Login.Username)
}

func TestReduceTabSelectedIsUnguarded(t *testing.T) {
	next := Reduce(model.NewViewState(), TabSelected{Tab: model.TabProfile})

	assert.Equal(t, model.TabProfile, next.Tab)
	assert.Nil(t, next.Session)
}

func TestReduceLoginSubmittedSetsLoading(t *testing.T) {
	state := model.NewViewState()
	state.Notification = &model.Notification{Kind: model.NotificationInfo}

	next := Reduce(state, LoginSubmitted{Form: model.LoginForm{Username: "a", Password: "b"}})

	assert.True(t, next.Loading)
	assert.Equal(t, "a", next.Login.Username)
	assert.Nil(t, next.Notification)
}

func TestReduceLoginOkCopiesPayloadExactly(t *testing.T) {
	state := Reduce(model.NewViewState(), LoginSubmitted{Form: model.LoginForm{Username: "a", Password: "b"}})
	resp := authclient.Response{
		Success:      true,
		User:         &model.User{ID: 1, Username: "a", Email: "a@x.com"},
		Profile:      &model.Profile{Level: testutil.Ptr(5), Experience: testutil.Ptr(40)},
		Achievements: []model.Achievement{},
	}

	next := Reduce(state, LoginCompleted{Result: authclient.Ok{Response: resp}})

	require.NotNil(t, next.Session)
	assert.Equal(t, *resp.User, next.Session.User)
	assert.Equal(t, *resp.Profile, *next.Session.Profile)
	assert.Empty(t, next.Session.Achievements)
	assert.NotNil(t, next.Session.Achievements)
	assert.Equal(t, model.TabProfile, next.Tab)
	assert.False(t, next.Loading)
	assert.Equal(t, model.LoginForm{}, next.Login)
	require.NotNil(t, next.Notification)
	assert.Equal(t, model.NotificationSuccess, next.Notification.Kind)
	assert.Equal(t, "Welcome back, a!", next.Notification.Message)
}

func TestReduceLoginOkReplacesAchievementsWholesale(t *testing.T) {
	state := loggedInState()
	resp := authclient.Response{
		Success:      true,
		User:         &model.User{ID: 2, Username: "b"},
		Achievements: []model.Achievement{{ID: 9, Name: "New"}},
	}

	next := Reduce(state, LoginCompleted{Result: authclient.Ok{Response: resp}})

	require.Len(t, next.Session.Achievements, 1)
	assert.Equal(t, "New", next.Session.Achievements[0].Name)
	assert.Nil(t, next.Session.Profile)

	resp.Achievements[0].Name = "mutated"
	assert.Equal(t, "New", next.Session.Achievements[0].Name)
}

func TestReduceLoginOkPrefersServerMessage(t *testing.T) {
	next := Reduce(model.NewViewState(), LoginCompleted{Result: authclient.Ok{Response: authclient.Response{
		Success: true,
		Message: "Login successful",
		User:    &model.User{Username: "a"},
	}}})

	assert.Equal(t, "Login successful", next.Notification.Message)
}

func TestReduceLoginOkWithoutUserFallsBackToFormUsername(t *testing.T) {
	state := Reduce(model.NewViewState(), LoginSubmitted{Form: model.LoginForm{Username: "alice", Password: "x"}})

	next := Reduce(state, LoginCompleted{Result: authclient.Ok{Response: authclient.Response{Success: true}}})

	require.NotNil(t, next.Session)
	assert.Equal(t, "alice", next.Session.User.Username)
}

func TestReduceLoginAppErrorKeepsState(t *testing.T) {
	state := Reduce(model.NewViewState(), LoginSubmitted{Form: model.LoginForm{Username: "a", Password: "b"}})

	next := Reduce(state, LoginCompleted{Result: authclient.AppError{Message: "Invalid username or password"}})

	assert.Nil(t, next.Session)
	assert.Equal(t, model.TabHome, next.Tab)
	assert.False(t, next.Loading)
	assert.Equal(t, "a", next.Login.Username)
	require.NotNil(t, next.Notification)
	assert.Equal(t, model.NotificationError, next.Notification.Kind)
	assert.Equal(t, "Invalid username or password", next.Notification.Message)
}

func TestReduceLoginAppErrorWithoutMessageUsesFallback(t *testing.T) {
	next := Reduce(model.NewViewState(), LoginCompleted{Result: authclient.AppError{}})

	assert.Equal(t, LoginFailedFallback, next.Notification.Message)
}

func TestReduceLoginTransportErrorUsesConnectivityMessage(t *testing.T) {
	state := loggedInState()
	state.Loading = true

	next := Reduce(state, LoginCompleted{Result: authclient.TransportError{Message: "request failed"}})

	assert.Equal(t, state.Session, next.Session)
	assert.False(t, next.Loading)
	assert.Equal(t, ConnectionFailedText, next.Notification.Message)
}

func TestReduceRegisterOkResetsFormWithoutLogin(t *testing.T) {
	state := model.NewViewState()
	state.Tab = model.TabRegister
	state = Reduce(state, RegisterSubmitted{Form: model.RegisterForm{Username: "a", Email: "a@x.com", Password: "secret"}})

	next := Reduce(state, RegisterCompleted{Result: authclient.Ok{Response: authclient.Response{Success: true}}})

	assert.Equal(t, model.RegisterForm{}, next.Register)
	assert.Equal(t, model.TabHome, next.Tab)
	assert.Nil(t, next.Session)
	assert.False(t, next.Loading)
	assert.Equal(t, RegisteredText, next.Notification.Message)
}

func TestReduceRegisterFailureRetainsForm(t *testing.T) {
	form := model.RegisterForm{Username: "a", Email: "bad", Password: "secret"}
	state := model.NewViewState()
	state.Tab = model.TabRegister
	state = Reduce(state, RegisterSubmitted{Form: form})

	rejected := Reduce(state, RegisterCompleted{Result: authclient.AppError{Message: "Invalid email"}})
	unreachable := Reduce(state, RegisterCompleted{Result: authclient.TransportError{}})

	for _, next := range []model.ViewState{rejected, unreachable} {
		assert.Equal(t, form, next.Register)
		assert.Equal(t, model.TabRegister, next.Tab)
		assert.False(t, next.Loading)
		assert.Equal(t, model.NotificationError, next.Notification.Kind)
	}
	assert.Equal(t, "Invalid email", rejected.Notification.Message)
	assert.Equal(t, ConnectionFailedText, unreachable.Notification.Message)
}

func TestReduceLoggedOutClearsSessionFromAnyState(t *testing.T) {
	states := []model.ViewState{model.NewViewState(), loggedInState()}
	withForm := loggedInState()
	withForm.Tab = model.TabStats
	withForm.Login = model.LoginForm{Username: "x", Password: "y"}
	states = append(states, withForm)

	for _, state := range states {
		next := Reduce(state, LoggedOut{})

		assert.Nil(t, next.Session)
		assert.Equal(t, model.LoginForm{}, next.Login)
		assert.Equal(t, model.TabHome, next.Tab)
		require.NotNil(t, next.Notification)
		assert.Equal(t, model.NotificationInfo, next.Notification.Kind)
	}
}

func TestReduceFormEdits(t *testing.T) {
	state := Reduce(model.NewViewState(), LoginFormEdited{Form: model.LoginForm{Username: "a"}})
	state = Reduce(state, RegisterFormEdited{Form: model.RegisterForm{Email: "e@x.com"}})

	assert.Equal(t, "a", state.Login.Username)
	assert.Equal(t, "e@x.com", state.Register.Email)
}
