package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking references exactly one trip. Bookings are created as pending and
// never transitioned by this service; confirmation belongs to an admin
// action or a payment webhook.
type Booking struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	TripID      uint          `gorm:"not null" json:"trip_id"`
	UserID      *string       `json:"user_id,omitempty"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	BookedAt    time.Time     `json:"booked_at"`
	TotalAmount float64       `json:"total_amount"`
	// Selections holds the per-day hotel/transport/guide choices as JSON.
	Selections string    `gorm:"type:jsonb" json:"selections,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
