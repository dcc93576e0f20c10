package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/mtarp-portal/internal/dependencies/ids"
)

// MockIDs is a deterministic Generator for testing. Its ids are UUID-shaped
// so they pass the same validation as real ones.
type MockIDs struct {
	mu   sync.Mutex
	next int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a MockIDs producing ...0001, ...0002 and so on
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// MockID returns the id a fresh MockIDs produces on its n-th call
func MockID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

// NewID returns the next sequential id
func (m *MockIDs) NewID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return MockID(m.next)
}
