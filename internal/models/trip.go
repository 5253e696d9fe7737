package models

import (
	"time"

	"github.com/lib/pq"
)

type Trip struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          *string        `json:"user_id,omitempty"` // nil for anonymous trips
	Title           string         `gorm:"not null" json:"title"`
	State           string         `json:"state"`
	Cities          pq.StringArray `gorm:"type:text[]" json:"cities"`
	StartDate       time.Time      `gorm:"type:date" json:"start_date"`
	BudgetPerPerson float64        `json:"budget_per_person"`
	TotalDays       int            `json:"total_days"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
