package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripplanner/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.TransportOption{},
		&models.Guide{},
		&models.GuideLanguage{},
		&models.Trip{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// The trip list sorts and joins on these; keep them indexed.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_booked_at ON bookings (booked_at DESC)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_trip_id ON bookings (trip_id)`)

	return db
}
