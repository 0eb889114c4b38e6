package availability

import (
	"context"
	"time"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

// DateFormat is the wire format for booking dates.
const DateFormat = "2006-01-02"

type Service interface {
	// Check queries available batches for a pool on a date.
	// Requires a session token; the date must be today or later.
	Check(ctx context.Context, token string, poolID int, bookingDate string) (*Result, error)
}

type service struct {
	portal Portal
	now    func() time.Time
}

func NewService(portal Portal) Service {
	return &service{
		portal: portal,
		now:    time.Now,
	}
}

func (s *service) Check(ctx context.Context, token string, poolID int, bookingDate string) (*Result, error) {
	if token == "" {
		return nil, apperror.ErrAuthRequired
	}
	if poolID <= 0 || bookingDate == "" {
		return nil, ErrInvalidInput
	}

	date, err := time.Parse(DateFormat, bookingDate)
	if err != nil {
		return nil, ErrInvalidInput
	}

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrInvalidDate
	}

	return s.portal.Check(ctx, token, poolID, bookingDate)
}
