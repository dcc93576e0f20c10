package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/mtarp-portal/internal/dependencies/ids"
	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/storage"
)

// Outcome is the result of one event applied to a page session
type Outcome struct {
	State model.ViewState
	// Notification is the message produced by the event, if any. It is never
	// persisted with the state.
	Notification *model.Notification
}

// Sessions runs controller operations against stored page sessions.
// Events for the same id are processed one at a time; ids are independent.
type Sessions struct {
	storage    storage.Storage
	controller *Controller
	ids        ids.Generator
	logger     *slog.Logger
	locks      *keyedMutex
}

// NewSessions creates a new Sessions
func NewSessions(storage storage.Storage, controller *Controller, ids ids.Generator, logger *slog.Logger) *Sessions {
	return &Sessions{
		storage:    storage,
		controller: controller,
		ids:        ids,
		logger:     logger,
		locks:      newKeyedMutex(),
	}
}

// NewID returns a fresh page-session id
func (s *Sessions) NewID() string {
	return s.ids.NewID()
}

// Get returns the stored state for id, or a fresh state if none exists.
// Reads do not wait for in-flight events, so a pending request shows as
// loading. A loading flag with no event running for id is left over from an
// interrupted request and reads as not loading.
func (s *Sessions) Get(ctx context.Context, id string) (model.ViewState, error) {
	state, err := s.load(ctx, id)
	if err != nil {
		return model.ViewState{}, err
	}
	if state.Loading && !s.locks.held(id) {
		state.Loading = false
	}
	return state, nil
}

func (s *Sessions) load(ctx context.Context, id string) (model.ViewState, error) {
	state, err := s.storage.GetViewState(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrViewStateNotFound) {
			return model.NewViewState(), nil
		}
		return model.ViewState{}, fmt.Errorf("load view state: %w", err)
	}
	return *state, nil
}

// Exists reports whether a state record is stored for id
func (s *Sessions) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.storage.GetViewState(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrViewStateNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SelectTab switches the active tab of a page session
func (s *Sessions) SelectTab(ctx context.Context, id string, tab model.Tab) (Outcome, error) {
	return s.update(ctx, id, func(state model.ViewState) model.ViewState {
		return s.controller.SelectTab(state, tab)
	})
}

// SubmitLogin runs a login for a page session. The loading state is stored
// while the request is in flight.
func (s *Sessions) SubmitLogin(ctx context.Context, id string, form model.LoginForm) (Outcome, error) {
	return s.update(ctx, id, func(state model.ViewState) model.ViewState {
		return s.controller.SubmitLogin(ctx, state, form, s.checkpoint(ctx, id))
	})
}

// SubmitRegistration runs a registration for a page session
func (s *Sessions) SubmitRegistration(ctx context.Context, id string, form model.RegisterForm) (Outcome, error) {
	return s.update(ctx, id, func(state model.ViewState) model.ViewState {
		return s.controller.SubmitRegistration(ctx, state, form, s.checkpoint(ctx, id))
	})
}

// Logout ends the Session of a page session
func (s *Sessions) Logout(ctx context.Context, id string) (Outcome, error) {
	return s.update(ctx, id, func(state model.ViewState) model.ViewState {
		return s.controller.Logout(state)
	})
}

func (s *Sessions) update(ctx context.Context, id string, fn func(model.ViewState) model.ViewState) (Outcome, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	state, err := s.load(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	// Nothing else runs for id while the lock is held
	state.Loading = false

	next := fn(state)
	notification := next.TakeNotification()

	// The settled state is stored even if the client has gone away
	if err := s.storage.SaveViewState(context.WithoutCancel(ctx), id, &next); err != nil {
		return Outcome{}, fmt.Errorf("save view state: %w", err)
	}

	return Outcome{State: next, Notification: notification}, nil
}

// checkpoint stores the in-flight state. Failures are logged only: the
// request itself can still complete.
func (s *Sessions) checkpoint(ctx context.Context, id string) LoadingHook {
	saveCtx := context.WithoutCancel(ctx)
	return func(state model.ViewState) {
		if err := s.storage.SaveViewState(saveCtx, id, &state); err != nil {
			s.logger.Warn("failed to store loading state", slog.String("error", err.Error()))
		}
	}
}

// keyedMutex hands out one mutex per key and forgets keys nobody holds
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu      sync.Mutex
	holders int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.holders++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.holders--
		if l.holders == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// held reports whether anyone holds or waits for key
func (k *keyedMutex) held(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.locks[key]
	return ok
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
