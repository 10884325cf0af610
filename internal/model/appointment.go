package model

import "time"

// Appointment status values. Only "confirmed" is written by the booking
// flow; "canceled" and "done" exist in the schema for reporting tools.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCanceled  = "canceled"
	AppointmentDone      = "done"
)

// Appointment binds one User to one Charger for a time interval.
// Times are stored timezone-naive; end must be strictly after start.
type Appointment struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"index;not null"`
	ChargerID int64     `gorm:"index;not null"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	Status    string    `gorm:"size:50;not null;default:confirmed"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	User    User    `gorm:"constraint:OnDelete:CASCADE"`
	Charger Charger `gorm:"constraint:OnDelete:CASCADE"`
}
