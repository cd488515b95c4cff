package identity_client

import (
	"fmt"
	"unicode/utf8"
)

// LoginRequest is the body of POST {host}/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST {host}/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthRequest is the body of POST {host}/auth. The service validates Token
// and answers with the user it belongs to.
type AuthRequest struct {
	Token string `json:"token"`
}

// LoginResponse is what the identity service returns for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SignupResponse is what the identity service returns for a successful signup.
type SignupResponse struct {
	Token string `json:"token"`
}

// AuthResponse carries the user a validated token belongs to.
type AuthResponse struct {
	User User `json:"user"`
}

// User is the identity service's view of an account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// PasswordHash never leaves the service.
	PasswordHash string `json:"-"`
}

// checkUTF8 rejects a field encoding/json would otherwise rewrite with U+FFFD.
func checkUTF8(field, value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: field %q", ErrInvalidFieldUTF8, field)
	}
	return nil
}

func (r LoginRequest) validate() error {
	if err := checkUTF8("username", r.Username); err != nil {
		return err
	}
	return checkUTF8("password", r.Password)
}

func (r SignupRequest) validate() error {
	for _, f := range [...]struct{ name, value string }{
		{"username", r.Username},
		{"email", r.Email},
		{"password", r.Password},
	} {
		if err := checkUTF8(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (r AuthRequest) validate() error {
	return checkUTF8("token", r.Token)
}
