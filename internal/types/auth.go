package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request to register a new user account.
// All fields are required and the confirmation must match the password.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=1"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"required,email"`
	MobileNo        string `json:"mobile_no" validate:"required,min=1"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session represents the authenticated session state recorded after a
// successful register or login. It is initialized at session start and
// mutated only by the access gate's success paths.
type Session struct {
	Username string `json:"username"`
	Purpose  string `json:"purpose,omitempty"`
}

// AuthResponse represents the register/login response with session state
// and an authentication token.
type AuthResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
