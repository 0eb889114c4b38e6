package account

import (
	"context"
)

type Service interface {
	// CurrentUser returns the member for the given session token.
	CurrentUser(ctx context.Context, token string) (*User, error)

	// Login authenticates and returns the portal session token together
	// with the member, when known.
	Login(ctx context.Context, emailOrAadhar, password string) (string, *User, error)
}

type service struct {
	portal Portal
}

func NewService(portal Portal) Service {
	return &service{portal: portal}
}

func (s *service) CurrentUser(ctx context.Context, token string) (*User, error) {
	return s.portal.CurrentUser(ctx, token)
}

func (s *service) Login(ctx context.Context, emailOrAadhar, password string) (string, *User, error) {
	if emailOrAadhar == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}
	return s.portal.Login(ctx, emailOrAadhar, password)
}
