package account

import (
	"net/http"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid credentials")
	ErrMissingCredentials = apperror.New(http.StatusBadRequest, "email/aadhar and password are required")
)

// User is the member identity the portal shows for a valid session.
// The portal only exposes the display name; Identity carries the login
// identifier when a page happens to include it.
type User struct {
	Name     string
	Identity string
}
