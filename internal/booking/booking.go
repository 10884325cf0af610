package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
	"ev-booking-backend/internal/parse"
	"ev-booking-backend/internal/store"
)

// Sentinel shown in listings when an appointment's charger or location
// no longer resolves.
const unknownPlace = "Desconhecido"

// Manager validates and executes appointment operations against the
// user, location and charger records in the store.
type Manager struct {
	store store.Store
}

// NewManager creates an appointment manager backed by s.
func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// CreateRequest carries the raw booking input. Timestamps stay as
// strings here; parsing is part of validation.
type CreateRequest struct {
	Local     string `json:"local"`
	Email     string `json:"email"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Detail is the resolved view of a created appointment.
type Detail struct {
	ID        int64
	User      string
	Local     string
	ChargerID int64
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// Create books an appointment. Resolution order: user by email,
// location by name, first charger at that location; then the time range
// is parsed and checked. Nothing is written until every step passes.
//
// The charger is picked by insertion order with no availability or
// overlap check, so two bookings can land on the same charger for the
// same window. Known gap, kept for compatibility with existing clients.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	required := []struct {
		name  string
		value string
	}{
		{"local", req.Local},
		{"email", req.Email},
		{"start_time", req.StartTime},
		{"end_time", req.EndTime},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, &MissingFieldError{Field: field.name}
		}
	}

	user, err := m.store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	location, err := m.store.LocationByName(ctx, req.Local)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}

	charger, err := m.store.FirstChargerAtLocation(ctx, location.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoChargerAtLocation
		}
		return nil, fmt.Errorf("failed to look up charger: %w", err)
	}

	startTime, err := parse.Timestamp(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parse.Timestamp(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !endTime.After(startTime) {
		return nil, ErrInvalidTimeRange
	}

	appointment := model.Appointment{
		UserID:    user.ID,
		ChargerID: charger.ID,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    model.AppointmentConfirmed,
	}
	if err := m.store.CreateAppointment(ctx, &appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &Detail{
		ID:        appointment.ID,
		User:      user.Email,
		Local:     location.Name,
		ChargerID: charger.ID,
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		Status:    appointment.Status,
	}, nil
}

// UserAppointment is one entry in a user's appointment listing, with
// the charger's location resolved to a name and address.
type UserAppointment struct {
	ID        int64
	Local     string
	Endereco  string
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// ListForUser returns every appointment owned by the user, in the
// store's natural retrieval order. An unknown user id is an error; a
// user without appointments yields an empty slice. Dangling charger or
// location references degrade to the "Desconhecido" sentinel instead of
// failing the whole call.
func (m *Manager) ListForUser(ctx context.Context, userID int64) ([]UserAppointment, error) {
	if _, err := m.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	appointments, err := m.store.AppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	result := make([]UserAppointment, 0, len(appointments))
	for _, ap := range appointments {
		entry := UserAppointment{
			ID:        ap.ID,
			Local:     unknownPlace,
			Endereco:  unknownPlace,
			StartTime: ap.StartTime,
			EndTime:   ap.EndTime,
			Status:    ap.Status,
		}

		if charger, err := m.store.ChargerByID(ctx, ap.ChargerID); err == nil {
			if location, err := m.store.LocationByID(ctx, charger.LocationID); err == nil {
				entry.Local = location.Name
				entry.Endereco = location.Address
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

// Cancel permanently removes an appointment. The record is hard-deleted
// rather than transitioned to the "canceled" status.
func (m *Manager) Cancel(ctx context.Context, appointmentID int64) error {
	if err := m.store.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
