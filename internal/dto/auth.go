package dto

import "strings"

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=254"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

// Normalize trims email and display name. Passwords are taken verbatim.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.DisplayName = strings.TrimSpace(r.DisplayName)
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CurrentUserResponse is returned by GET /auth/me.
type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}

// AuthStatusResponse is returned by GET /auth/status.
type AuthStatusResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
	Message       string        `json:"message,omitempty"`
}

// MessageResponse carries a single human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
