package http

import (
	"github.com/poolpass/pool-booking-gateway/internal/account"
)

// LoginRequest is the form-encoded login payload.
type LoginRequest struct {
	EmailOrAadhar string `form:"email_or_aadhar" binding:"required"`
	Password      string `form:"password" binding:"required"`
}

// LoginResponse reports a successful login. The session cookie is set on the
// same response.
type LoginResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
}

// LogoutResponse confirms the session cookie was cleared.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// UserResponse is the shape of the current-user probe.
type UserResponse struct {
	Name     string `json:"name"`
	Identity string `json:"identity"`
}

// NewUserResponse converts the domain user to its API shape.
func NewUserResponse(u *account.User) UserResponse {
	return UserResponse{
		Name:     u.Name,
		Identity: u.Identity,
	}
}
