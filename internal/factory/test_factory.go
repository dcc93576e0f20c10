package factory

import (
	"time"

	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/dependencies/mocks"
	"github.com/mcoot/mtarp-portal/internal/storage/memory"
	"github.com/mcoot/mtarp-portal/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Auth requests go to endpoint, usually a testutil.AuthServer.
func NewTestApp(endpoint string) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	client := authclient.New(authclient.Config{Endpoint: endpoint, Timeout: 5 * time.Second})
	app := newWithDependencies(store, mockClock, mockIDs, client, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
		Memory:    store,
	}
}
