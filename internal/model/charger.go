package model

import "time"

// Charger status values.
const (
	ChargerAvailable   = "available"
	ChargerUnavailable = "unavailable"
	ChargerMaintenance = "maintenance"
)

// Charger represents a chargeable unit installed at a Location.
type Charger struct {
	ID         int64     `gorm:"primaryKey"`
	LocationID int64     `gorm:"index;not null"`
	Status     string    `gorm:"size:50;not null;default:available"`
	CreatedAt  time.Time `gorm:"not null"`

	// Associations
	Location Location `gorm:"constraint:OnDelete:CASCADE"`
}
