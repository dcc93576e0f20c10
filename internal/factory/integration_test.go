package factory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mtarp-portal/internal/model"
	redisstorage "github.com/mcoot/mtarp-portal/internal/storage/redis"
	"github.com/mcoot/mtarp-portal/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	auth *testutil.AuthServer
	app  *TestApp
	ctx  context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.auth = testutil.NewAuthServer()
	s.app = NewTestApp(s.auth.URL)
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.auth.Close()
}

// Test: register, log in, browse, log out against the stub endpoint
func (s *IntegrationSuite) TestCompleteAccountFlow() {
	id := s.app.Sessions.NewID()

	// Step 1: Register
	outcome, err := s.app.Sessions.SubmitRegistration(s.ctx, id, model.RegisterForm{Username: "rookie", Email: "Rookie@Example.com", Password: "secret1"})
	s.Require().NoError(err)
	s.Equal(model.NotificationSuccess, outcome.Notification.Kind)
	s.Equal("Registration complete", outcome.Notification.Message)
	s.Nil(outcome.State.Session)
	s.Equal(model.RegisterForm{}, outcome.State.Register)

	// Step 2: Log in with the new account
	outcome, err = s.app.Sessions.SubmitLogin(s.ctx, id, model.LoginForm{Username: "rookie", Password: "secret1"})
	s.Require().NoError(err)
	s.Require().NotNil(outcome.State.Session)
	s.Equal("rookie", outcome.State.Session.User.Username)
	s.Equal("rookie@example.com", outcome.State.Session.User.Email)
	s.Equal("rookie_Character", *outcome.State.Session.Profile.CharacterName)
	s.Equal(1, *outcome.State.Session.Profile.Level)
	s.Equal(model.TabProfile, outcome.State.Tab)

	// Step 3: Switch tabs
	outcome, err = s.app.Sessions.SelectTab(s.ctx, id, model.TabStats)
	s.Require().NoError(err)
	s.Equal(model.TabStats, outcome.State.Tab)
	s.NotNil(outcome.State.Session)

	// Step 4: Log out
	outcome, err = s.app.Sessions.Logout(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(outcome.State.Session)
	s.Equal(model.TabHome, outcome.State.Tab)

	// The endpoint saw exactly two requests
	reqs := s.auth.Requests()
	s.Require().Len(reqs, 2)
	s.Equal("register", reqs[0].Action)
	s.Equal("login", reqs[1].Action)
}

func (s *IntegrationSuite) TestLoginRejectedKeepsLoggedOut() {
	s.auth.AddAccount("phoenix", "p@x.com", "right", testutil.SampleProfile(), testutil.SampleAchievements())
	id := s.app.Sessions.NewID()

	outcome, err := s.app.Sessions.SubmitLogin(s.ctx, id, model.LoginForm{Username: "phoenix", Password: "wrong"})
	s.Require().NoError(err)

	s.Nil(outcome.State.Session)
	s.Equal(model.NotificationError, outcome.Notification.Kind)
	s.Equal("Invalid username or password", outcome.Notification.Message)
	s.Equal(model.TabHome, outcome.State.Tab)
}

func (s *IntegrationSuite) TestEndpointDownIsConnectionError() {
	s.auth.SetDown(true)
	id := s.app.Sessions.NewID()

	outcome, err := s.app.Sessions.SubmitLogin(s.ctx, id, model.LoginForm{Username: "a", Password: "b"})
	s.Require().NoError(err)

	s.Nil(outcome.State.Session)
	s.False(outcome.State.Loading)
	s.Equal("Could not reach the server. Please try again later.", outcome.Notification.Message)
}

func (s *IntegrationSuite) TestStoredRecordHasNoPassword() {
	s.auth.SetDown(true)
	id := s.app.Sessions.NewID()

	_, err := s.app.Sessions.SubmitRegistration(s.ctx, id, model.RegisterForm{Username: "a", Email: "a@x.com", Password: "topsecret"})
	s.Require().NoError(err)

	stored, err := s.app.Storage.GetViewState(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("a", stored.Register.Username)
	s.Empty(stored.Register.Password)
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(Config{})
	if err == nil {
		t.Fatal("expected error without endpoint")
	}
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	cfg := Config{StorageType: "postgres"}
	cfg.AuthConfig.Endpoint = "http://localhost:1"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}

func TestNewWithRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	cfg := Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg}
	cfg.AuthConfig.Endpoint = "http://localhost:1"

	app, err := New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, ok := app.Storage.(*redisstorage.Storage); !ok {
		t.Fatalf("expected redis storage, got %T", app.Storage)
	}
}
