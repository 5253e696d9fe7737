package service

import (
	"context"
	"fmt"

	"tripplanner/internal/dto"
	"tripplanner/internal/repository"
)

// hotelPageSize caps the hotel page; transport and guide tables are small
// and returned whole.
const hotelPageSize = 50

type CatalogService interface {
	// GetCatalog fetches all three catalogs in one call. A failure on any
	// table fails the whole fetch — callers must show an error state, not
	// a silently empty catalog.
	GetCatalog(ctx context.Context) (*dto.CatalogResponse, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	hotels, err := s.repo.ListHotels(ctx, hotelPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch hotels: %w", err)
	}

	options, err := s.repo.ListTransportOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch transport options: %w", err)
	}

	guides, err := s.repo.ListGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch guides: %w", err)
	}

	// Non-nil slices keep an empty catalog rendering as [] instead of null.
	resp := &dto.CatalogResponse{
		Hotels:    make([]dto.HotelResponse, 0, len(hotels)),
		Transport: make([]dto.TransportResponse, 0, len(options)),
		Guides:    make([]dto.GuideResponse, 0, len(guides)),
	}
	for _, h := range hotels {
		resp.Hotels = append(resp.Hotels, dto.ToHotelResponse(h))
	}
	for _, t := range options {
		resp.Transport = append(resp.Transport, dto.ToTransportResponse(t))
	}
	for _, g := range guides {
		resp.Guides = append(resp.Guides, dto.ToGuideResponse(g))
	}
	return resp, nil
}
