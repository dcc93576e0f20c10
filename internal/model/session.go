package model

// User is the account identity returned by the auth endpoint
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Session holds the authenticated user's data for one page session.
// A nil *Session means the visitor is not logged in.
type Session struct {
	User         User          `json:"user"`
	Profile      *Profile      `json:"profile,omitempty"`
	Achievements []Achievement `json:"achievements"`
}
