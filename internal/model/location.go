package model

import "time"

// Location represents a physical site hosting one or more chargers.
// Name is the human-facing lookup key used by the booking flow.
type Location struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Address   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Chargers []Charger `gorm:"foreignKey:LocationID"`
}
