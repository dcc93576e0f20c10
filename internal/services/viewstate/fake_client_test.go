package viewstate

import (
	"context"
	"sync"

	"github.com/mcoot/mtarp-portal/internal/authclient"
)

type authCall struct {
	action   string
	username string
	email    string
	password string
}

// fakeAuthClient returns queued results in order and records every call.
// An optional gate blocks each call until it is closed or receives a value.
type fakeAuthClient struct {
	mu      sync.Mutex
	results []authclient.Result
	calls   []authCall
	gate    chan struct{}
	entered chan struct{}
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{}
}

func (f *fakeAuthClient) queue(results ...authclient.Result) {
	f.mu.Lock()
	f.results = append(f.results, results...)
	f.mu.Unlock()
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) authclient.Result {
	return f.call(ctx, authCall{action: authclient.ActionLogin, username: username, password: password})
}

func (f *fakeAuthClient) Register(ctx context.Context, username, email, password string) authclient.Result {
	return f.call(ctx, authCall{action: authclient.ActionRegister, username: username, email: email, password: password})
}

func (f *fakeAuthClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAuthClient) call(ctx context.Context, c authCall) authclient.Result {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	gate, entered := f.gate, f.entered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return authclient.TransportError{Message: "request failed", Err: ctx.Err()}
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) == 0 {
		return authclient.TransportError{Message: "no result queued"}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}
