package model

import "time"

// NotificationKind classifies a notification for display
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is the transient message produced by a single event
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// ViewState is the complete state of one page session
type ViewState struct {
	Tab          Tab           `json:"tab"`
	Loading      bool          `json:"loading"`
	Login        LoginForm     `json:"login"`
	Register     RegisterForm  `json:"register"`
	Session      *Session      `json:"session,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewViewState returns the state of a freshly opened page
func NewViewState() ViewState {
	return ViewState{Tab: TabHome}
}

// LoggedIn reports whether a Session is present
func (s ViewState) LoggedIn() bool {
	return s.Session != nil
}

// TakeNotification returns the pending notification and clears it
func (s *ViewState) TakeNotification() *Notification {
	n := s.Notification
	s.Notification = nil
	return n
}
