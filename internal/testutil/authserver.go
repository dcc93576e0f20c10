package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/mcoot/mtarp-portal/internal/model"
)

// AuthRequest is a request body received by an AuthServer
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type authAccount struct {
	user     model.User
	password string
	profile  *model.Profile
	achieves []model.Achievement
}

// AuthServer is an in-process stand-in for the game's auth endpoint. It
// answers with the same status codes and body shapes as the real one.
type AuthServer struct {
	*httptest.Server

	mu       sync.Mutex
	accounts map[string]*authAccount
	requests []AuthRequest
	nextID   int64
	down     bool
}

// NewAuthServer starts an AuthServer. Close it when done.
func NewAuthServer() *AuthServer {
	s := &AuthServer{accounts: make(map[string]*authAccount), nextID: 1}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// AddAccount registers an account directly, bypassing validation
func (s *AuthServer) AddAccount(username, email, password string, profile *model.Profile, achievements []model.Achievement) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(username, email, password, profile, achievements)
}

// SetDown makes the server answer every request with a non-JSON 502
func (s *AuthServer) SetDown(down bool) {
	s.mu.Lock()
	s.down = down
	s.mu.Unlock()
}

// Requests returns a copy of every request received so far
func (s *AuthServer) Requests() []AuthRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuthRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *AuthServer) addLocked(username, email, password string, profile *model.Profile, achievements []model.Achievement) model.User {
	user := model.User{ID: s.nextID, Username: username, Email: email, CreatedAt: "2024-01-15T10:30:00"}
	s.nextID++
	if profile == nil {
		profile = &model.Profile{CharacterName: Ptr(username + "_Character"), Level: Ptr(1)}
	}
	if achievements == nil {
		achievements = []model.Achievement{}
	}
	s.accounts[username] = &authAccount{user: user, password: password, profile: profile, achieves: achievements}
	return user
}

func (s *AuthServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.down {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html><body>Bad Gateway</body></html>"))
		return
	}

	if r.Method != http.MethodPost {
		writeAuthJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
		return
	}

	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON"})
		return
	}
	s.requests = append(s.requests, req)

	switch req.Action {
	case "login":
		s.login(w, req)
	case "register":
		s.register(w, req)
	default:
		writeAuthJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid action"})
	}
}

func (s *AuthServer) login(w http.ResponseWriter, req AuthRequest) {
	if req.Username == "" || req.Password == "" {
		writeAuthJSON(w, http.StatusBadRequest, map[string]any{"error": "Username and password are required"})
		return
	}
	acc, ok := s.accounts[req.Username]
	if !ok || acc.password != req.Password {
		writeAuthJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid username or password"})
		return
	}
	writeAuthJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Login successful",
		"user":         acc.user,
		"profile":      acc.profile,
		"achievements": acc.achieves,
	})
}

func (s *AuthServer) register(w http.ResponseWriter, req AuthRequest) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		writeAuthJSON(w, http.StatusBadRequest, map[string]any{"error": "All fields are required"})
		return
	}
	if len(req.Password) < 6 {
		writeAuthJSON(w, http.StatusBadRequest, map[string]any{"error": "Password must be at least 6 characters"})
		return
	}
	if _, exists := s.accounts[username]; exists {
		writeAuthJSON(w, http.StatusConflict, map[string]any{"error": "A user with that name or email already exists"})
		return
	}
	user := s.addLocked(username, email, req.Password, nil, nil)
	writeAuthJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration complete",
		"user":    user,
	})
}

func writeAuthJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
