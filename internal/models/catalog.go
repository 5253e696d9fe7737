package models

// Catalog rows come from a shared schema that this service does not own.
// Price columns are nullable and features/languages live in side tables,
// so the service layer normalizes them before anything reaches a client.

type Hotel struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Rating        float64  `json:"rating"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
}

type TransportOption struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Type        string   `json:"type"`
	Name        string   `gorm:"not null" json:"name"`
	PricePerDay *float64 `json:"price_per_day,omitempty"`
	// Features is a free-form JSON blob; some rows keep the price here
	// instead of price_per_day.
	Features string `gorm:"type:jsonb" json:"features,omitempty"`
}

type Guide struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Rating      float64         `json:"rating"`
	PricePerDay *float64        `json:"price_per_day,omitempty"`
	Languages   []GuideLanguage `gorm:"foreignKey:GuideID" json:"languages,omitempty"`
}

type GuideLanguage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GuideID  uint   `gorm:"index;not null" json:"guide_id"`
	Language string `gorm:"not null" json:"language"`
}
