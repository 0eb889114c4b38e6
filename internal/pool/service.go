package pool

import (
	"bytes"
	"context"
	"io"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/imageutil"
)

const (
	defaultThumbWidth  = 480
	defaultThumbHeight = 320
	maxThumbDimension  = 1600
)

type Service interface {
	List(ctx context.Context, token string) ([]Pool, error)
	GetByID(ctx context.Context, token string, id int) (*Pool, error)

	// Thumbnail returns the pool photo scaled to fit within the given
	// bounds, encoded as JPEG.
	Thumbnail(ctx context.Context, token string, id, maxWidth, maxHeight int) (io.Reader, error)
}

type service struct {
	portal Portal
}

func NewService(portal Portal) Service {
	return &service{portal: portal}
}

func (s *service) List(ctx context.Context, token string) ([]Pool, error) {
	return s.portal.List(ctx, token)
}

func (s *service) GetByID(ctx context.Context, token string, id int) (*Pool, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.portal.Get(ctx, token, id)
}

func (s *service) Thumbnail(ctx context.Context, token string, id, maxWidth, maxHeight int) (io.Reader, error) {
	if maxWidth <= 0 || maxWidth > maxThumbDimension {
		maxWidth = defaultThumbWidth
	}
	if maxHeight <= 0 || maxHeight > maxThumbDimension {
		maxHeight = defaultThumbHeight
	}

	raw, err := s.portal.FetchImage(ctx, token, id)
	if err != nil {
		return nil, err
	}

	thumb, err := imageutil.Thumbnail(bytes.NewReader(raw), maxWidth, maxHeight)
	if err != nil {
		return nil, ErrImageUnavailable
	}
	return thumb, nil
}
