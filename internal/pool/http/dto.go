package http

import (
	"github.com/poolpass/pool-booking-gateway/internal/pool"
)

// PoolResponse is the shape of pool data returned in API responses.
type PoolResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	ImageURL     string `json:"image_url"`
	GoogleMapURL string `json:"google_map_url,omitempty"`
}

// NewPoolResponse converts domain pool.Pool to its API shape.
func NewPoolResponse(p *pool.Pool) PoolResponse {
	return PoolResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Address:      p.Address,
		ImageURL:     p.ImageURL,
		GoogleMapURL: p.GoogleMapURL,
	}
}

// ThumbnailRequest defines the optional bounding box for the image endpoint.
type ThumbnailRequest struct {
	Width  int `form:"w"`
	Height int `form:"h"`
}
