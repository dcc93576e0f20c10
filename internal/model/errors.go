package model

import "errors"

// Common errors used across the application
var (
	// View-state errors
	ErrViewStateNotFound = errors.New("view state not found")

	// Navigation errors
	ErrUnknownTab = errors.New("unknown tab")
)
