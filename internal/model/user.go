package model

import "time"

// User represents a registered account. Email doubles as the login
// identifier and as the lookup key when booking an appointment.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	// Associations
	Appointments []Appointment `gorm:"foreignKey:UserID"`
}
