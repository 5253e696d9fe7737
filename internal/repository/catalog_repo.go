package repository

import (
	"context"

	"gorm.io/gorm"

	"tripplanner/internal/models"
)

type CatalogRepository interface {
	// ListHotels returns up to limit hotels, best-rated first.
	ListHotels(ctx context.Context, limit int) ([]models.Hotel, error)
	ListTransportOptions(ctx context.Context) ([]models.TransportOption, error)
	ListGuides(ctx context.Context) ([]models.Guide, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListHotels(ctx context.Context, limit int) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *catalogRepository) ListTransportOptions(ctx context.Context) ([]models.TransportOption, error) {
	var options []models.TransportOption
	if err := r.db.WithContext(ctx).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *catalogRepository) ListGuides(ctx context.Context) ([]models.Guide, error) {
	var guides []models.Guide
	if err := r.db.WithContext(ctx).Preload("Languages").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}
