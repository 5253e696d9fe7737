package repository

import (
	"context"

	"gorm.io/gorm"

	"tripplanner/internal/models"
)

type TripRepository interface {
	Create(ctx context.Context, tx *gorm.DB, trip *models.Trip) error
	FindByID(ctx context.Context, id uint) (*models.Trip, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, tx *gorm.DB, trip *models.Trip) error {
	return tx.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Trip, error) {
	var trips []models.Trip
	if len(ids) == 0 {
		return trips, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}
