package models

// AuthMode selects which authentication form is shown while the user is not
// logged in. It never changes the authentication state itself.
type AuthMode int

const (
	// ModeLogin shows the username/password form.
	ModeLogin AuthMode = iota
	// ModeSigningUp shows the registration form (username, email, password).
	ModeSigningUp
)

func (m AuthMode) String() string {
	if m == ModeSigningUp {
		return "signing_up"
	}
	return "login"
}

// Session is the authenticated identity of the current user.
//
// IsAuthenticated implies a non-empty Username.
type Session struct {
	IsAuthenticated bool
	Username        string
	// Token is the opaque session marker returned by the auth backend.
	// The client never validates it.
	Token string
}

// Credentials are the form values submitted to the authentication backend.
// Email is only sent (and only required) on registration.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ErrorResponse is the body returned by the auth backend on a non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}
