package repository

import (
	"context"

	"gorm.io/gorm"

	"tripplanner/internal/models"
)

// StatusRepository runs the read-only checks behind the diagnostics
// endpoint. Failures are reported per table, never aggregated into one
// error.
type StatusRepository interface {
	CountRows(ctx context.Context, table string) (int64, error)
	// ProbeTrips selects the columns the trip reader depends on, to catch
	// schema drift before it shows up as broken trip lists.
	ProbeTrips(ctx context.Context) (*models.Trip, error)
}

type statusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

// tableModels maps diag table names to their gorm models. Counting through
// the model keeps gorm's naming rules authoritative.
var tableModels = map[string]any{
	"hotels":            &models.Hotel{},
	"transport_options": &models.TransportOption{},
	"guides":            &models.Guide{},
	"trips":             &models.Trip{},
	"bookings":          &models.Booking{},
}

func (r *statusRepository) CountRows(ctx context.Context, table string) (int64, error) {
	model, ok := tableModels[table]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	var count int64
	err := r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, err
}

func (r *statusRepository) ProbeTrips(ctx context.Context) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.WithContext(ctx).
		Select("id", "budget_per_person", "start_date", "total_days").
		Limit(1).
		Find(&trip).Error
	if err != nil {
		return nil, err
	}
	if trip.ID == 0 {
		return nil, nil // empty table is fine
	}
	return &trip, nil
}
