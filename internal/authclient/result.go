package authclient

import "github.com/mcoot/mtarp-portal/internal/model"

// Response is the JSON body returned by the auth endpoint for every action
type Response struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message,omitempty"`
	Error        string              `json:"error,omitempty"`
	User         *model.User         `json:"user,omitempty"`
	Profile      *model.Profile      `json:"profile,omitempty"`
	Achievements []model.Achievement `json:"achievements,omitempty"`
}

// Result is the outcome of one endpoint call: Ok, AppError or TransportError
type Result interface {
	isResult()
	// Outcome returns a short label used in logs and metrics
	Outcome() string
}

// Ok is returned when the endpoint answered with success=true
type Ok struct {
	Response Response
}

// AppError is returned when the endpoint was reachable but rejected the request.
// Message is the server-supplied text and may be empty.
type AppError struct {
	Message string
}

// TransportError is returned when the endpoint could not be reached or its
// answer could not be parsed
type TransportError struct {
	Message string
	Err     error
}

func (Ok) isResult()             {}
func (AppError) isResult()       {}
func (TransportError) isResult() {}

func (Ok) Outcome() string             { return "ok" }
func (AppError) Outcome() string       { return "app_error" }
func (TransportError) Outcome() string { return "transport_error" }

// Unwrap exposes the underlying cause
func (e TransportError) Unwrap() error {
	return e.Err
}

// Error implements error so a TransportError can be logged or wrapped directly
func (e TransportError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}
