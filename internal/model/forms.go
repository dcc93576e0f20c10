package model

// LoginForm buffers the login form inputs.
// Password is never serialized so stored state records cannot leak it.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// IsEmpty reports whether every field is blank
func (f LoginForm) IsEmpty() bool {
	return f.Username == "" && f.Password == ""
}

// RegisterForm buffers the registration form inputs
type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// IsEmpty reports whether every field is blank
func (f RegisterForm) IsEmpty() bool {
	return f.Username == "" && f.Email == "" && f.Password == ""
}
