package booking

import (
	"context"
	"strings"

	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

type Service interface {
	// List fetches one dashboard page for the session's member.
	List(ctx context.Context, token string, filter Filter) (*Page, error)

	// Receipt fetches a receipt PDF for the session's member.
	Receipt(ctx context.Context, token, receiptID string) (*Receipt, error)
}

type service struct {
	portal Portal
}

func NewService(portal Portal) Service {
	return &service{portal: portal}
}

func (s *service) List(ctx context.Context, token string, filter Filter) (*Page, error) {
	if token == "" {
		return nil, apperror.ErrAuthRequired
	}

	if filter.Page < 1 {
		filter.Page = 1
	}

	// A sort is only meaningful as a (field, order) pair.
	filter.SortOrder = strings.ToUpper(filter.SortOrder)
	if filter.SortOrder != "ASC" && filter.SortOrder != "DESC" {
		filter.SortOrder = ""
	}
	if filter.SortField == "" || filter.SortOrder == "" {
		filter.SortField = ""
		filter.SortOrder = ""
	}

	return s.portal.List(ctx, token, filter)
}

func (s *service) Receipt(ctx context.Context, token, receiptID string) (*Receipt, error) {
	if token == "" {
		return nil, apperror.ErrAuthRequired
	}
	if receiptID == "" {
		return nil, ErrInvalidReceiptID
	}
	return s.portal.FetchReceipt(ctx, token, receiptID)
}
