package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mtarp-portal/internal/dependencies/mocks"
)

func serveWithSession(mw func(http.Handler) http.Handler, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	var seen string
	h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return seen, rr
}

func TestViewSessionIssuesCookie(t *testing.T) {
	id, rr := serveWithSession(ViewSession(mocks.NewMockIDs(), true), nil)

	assert.Equal(t, mocks.MockID(1), id)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestViewSessionKeepsValidCookie(t *testing.T) {
	existing := mocks.MockID(42)

	id, rr := serveWithSession(ViewSession(mocks.NewMockIDs(), false), &http.Cookie{Name: SessionCookieName, Value: existing})

	assert.Equal(t, existing, id)
	assert.Empty(t, rr.Result().Cookies())
}

func TestViewSessionReplacesInvalidCookie(t *testing.T) {
	id, _ := serveWithSession(ViewSession(mocks.NewMockIDs(), false), &http.Cookie{Name: SessionCookieName, Value: "../../etc"})

	assert.Equal(t, mocks.MockID(1), id)
}

func TestExistingSessionNeverIssues(t *testing.T) {
	id, rr := serveWithSession(ExistingSession(), nil)

	assert.Empty(t, id)
	assert.Empty(t, rr.Result().Cookies())
}
