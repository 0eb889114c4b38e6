package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

type stubPortal struct {
	result *Result
	calls  int
}

func (s *stubPortal) Check(ctx context.Context, token string, poolID int, bookingDate string) (*Result, error) {
	s.calls++
	return s.result, nil
}

func newFixedService(portal Portal) *service {
	return &service{
		portal: portal,
		// Mid-day so the "today" cutoff is unambiguous.
		now: func() time.Time {
			return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestServiceCheckRequiresSession(t *testing.T) {
	stub := &stubPortal{result: &Result{}}
	s := newFixedService(stub)

	_, err := s.Check(context.Background(), "", 1, "2026-09-02")
	assert.ErrorIs(t, err, apperror.ErrAuthRequired)
	assert.Zero(t, stub.calls, "the portal is never consulted without a session")
}

func TestServiceCheckValidatesInput(t *testing.T) {
	stub := &stubPortal{result: &Result{}}
	s := newFixedService(stub)

	_, err := s.Check(context.Background(), "tok", 0, "2026-09-02")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Check(context.Background(), "tok", 1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Check(context.Background(), "tok", 1, "02-09-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, stub.calls)
}

func TestServiceCheckDateCutoff(t *testing.T) {
	stub := &stubPortal{result: &Result{Batches: []Batch{}}}
	s := newFixedService(stub)

	t.Run("Yesterday is rejected", func(t *testing.T) {
		_, err := s.Check(context.Background(), "tok", 1, "2026-08-31")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Today is allowed", func(t *testing.T) {
		result, err := s.Check(context.Background(), "tok", 1, "2026-09-01")
		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("Tomorrow is allowed", func(t *testing.T) {
		_, err := s.Check(context.Background(), "tok", 1, "2026-09-02")
		assert.NoError(t, err)
	})
}
