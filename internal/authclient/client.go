package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Actions understood by the auth endpoint
const (
	ActionLogin    = "login"
	ActionRegister = "register"
)

// Config holds settings for the auth endpoint client
type Config struct {
	// Endpoint is the single URL all actions are POSTed to
	Endpoint string
	// Timeout bounds one request; zero means no client-side timeout
	Timeout time.Duration
}

// DefaultConfig returns default client settings (Endpoint must still be set)
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

type loginRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client talks to the external authentication/profile endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a Client with its own http.Client
func New(cfg Config) *Client {
	return NewWithHTTPClient(cfg.Endpoint, &http.Client{Timeout: cfg.Timeout})
}

// NewWithHTTPClient creates a Client using an existing http.Client (for testing)
func NewWithHTTPClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Endpoint returns the configured endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Login submits credentials. A single attempt is made.
func (c *Client) Login(ctx context.Context, username, password string) Result {
	return c.post(ctx, loginRequest{
		Action:   ActionLogin,
		Username: username,
		Password: password,
	})
}

// Register submits a new account. A single attempt is made.
func (c *Client) Register(ctx context.Context, username, email, password string) Result {
	return c.post(ctx, registerRequest{
		Action:   ActionRegister,
		Username: username,
		Email:    email,
		Password: password,
	})
}

// post sends body and classifies the answer. Any JSON body is treated as an
// application answer whatever the status code, since the endpoint reports
// rejections as 4xx/5xx with an error field.
func (c *Client) post(ctx context.Context, body any) Result {
	data, err := json.Marshal(body)
	if err != nil {
		return TransportError{Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return TransportError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError{Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransportError{Message: "failed to read response", Err: err}
	}

	var parsed Response
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return TransportError{
			Message: "failed to parse response",
			Err:     fmt.Errorf("HTTP %d: %w", resp.StatusCode, err),
		}
	}

	// null, {} or a proxy's JSON error page carry neither field
	var env envelope
	_ = json.Unmarshal(respBody, &env)
	if env.Success == nil && env.Error == nil {
		return TransportError{
			Message: "unexpected response",
			Err:     fmt.Errorf("HTTP %d: %w", resp.StatusCode, errNoAnswer),
		}
	}

	if !parsed.Success {
		return AppError{Message: parsed.Error}
	}
	return Ok{Response: parsed}
}

var errNoAnswer = errors.New("body has neither success nor error")

// envelope tells an endpoint answer apart from any other JSON body
type envelope struct {
	Success *bool   `json:"success"`
	Error   *string `json:"error"`
}
