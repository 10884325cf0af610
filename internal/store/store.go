package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
)

// Store defines the persistence capability surface consumed by the
// booking layer and the HTTP handlers: point lookups by primary key,
// single-field equality lookups, and transactional writes. Lookups
// return gorm.ErrRecordNotFound when no row matches.
type Store interface {
	DB() *gorm.DB

	CreateUser(ctx context.Context, user *model.User) error
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, location *model.Location) error
	LocationByID(ctx context.Context, id int64) (*model.Location, error)
	LocationByName(ctx context.Context, name string) (*model.Location, error)
	LocationsWithChargers(ctx context.Context) ([]model.Location, error)
	DeleteLocation(ctx context.Context, id int64) error

	CreateCharger(ctx context.Context, charger *model.Charger) error
	ChargerByID(ctx context.Context, id int64) (*model.Charger, error)
	Chargers(ctx context.Context) ([]model.Charger, error)
	FirstChargerAtLocation(ctx context.Context, locationID int64) (*model.Charger, error)

	CreateAppointment(ctx context.Context, appointment *model.Appointment) error
	AppointmentsByUser(ctx context.Context, userID int64) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStore) UserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user and, within the same transaction, every
// appointment the user owns. The cascade is explicit rather than
// delegated to the driver so it behaves identically on sqlite and
// postgres.
func (s *gormStore) DeleteUser(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Appointment{}).Error; err != nil {
			return fmt.Errorf("failed to delete appointments for user %d: %w", id, err)
		}
		return tx.Delete(&user).Error
	})
}

func (s *gormStore) CreateLocation(ctx context.Context, location *model.Location) error {
	return s.db.WithContext(ctx).Create(location).Error
}

func (s *gormStore) LocationByID(ctx context.Context, id int64) (*model.Location, error) {
	var location model.Location
	if err := s.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *gormStore) LocationByName(ctx context.Context, name string) (*model.Location, error) {
	var location model.Location
	if err := s.db.WithContext(ctx).First(&location, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *gormStore) LocationsWithChargers(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Preload("Chargers").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// DeleteLocation removes a location, its chargers and, transitively,
// the appointments referencing those chargers, all in one transaction.
func (s *gormStore) DeleteLocation(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location model.Location
		if err := tx.First(&location, id).Error; err != nil {
			return err
		}

		var chargerIDs []int64
		if err := tx.Model(&model.Charger{}).Where("location_id = ?", id).Pluck("id", &chargerIDs).Error; err != nil {
			return fmt.Errorf("failed to list chargers for location %d: %w", id, err)
		}
		if len(chargerIDs) > 0 {
			if err := tx.Where("charger_id IN ?", chargerIDs).Delete(&model.Appointment{}).Error; err != nil {
				return fmt.Errorf("failed to delete appointments for location %d: %w", id, err)
			}
			if err := tx.Where("location_id = ?", id).Delete(&model.Charger{}).Error; err != nil {
				return fmt.Errorf("failed to delete chargers for location %d: %w", id, err)
			}
		}
		return tx.Delete(&location).Error
	})
}

func (s *gormStore) CreateCharger(ctx context.Context, charger *model.Charger) error {
	return s.db.WithContext(ctx).Create(charger).Error
}

func (s *gormStore) ChargerByID(ctx context.Context, id int64) (*model.Charger, error) {
	var charger model.Charger
	if err := s.db.WithContext(ctx).First(&charger, id).Error; err != nil {
		return nil, err
	}
	return &charger, nil
}

func (s *gormStore) Chargers(ctx context.Context) ([]model.Charger, error) {
	var chargers []model.Charger
	if err := s.db.WithContext(ctx).Find(&chargers).Error; err != nil {
		return nil, err
	}
	return chargers, nil
}

// FirstChargerAtLocation returns the lowest-id charger installed at the
// location, regardless of its status or existing bookings.
func (s *gormStore) FirstChargerAtLocation(ctx context.Context, locationID int64) (*model.Charger, error) {
	var charger model.Charger
	err := s.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("id").
		First(&charger).Error
	if err != nil {
		return nil, err
	}
	return &charger, nil
}

func (s *gormStore) CreateAppointment(ctx context.Context, appointment *model.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(appointment).Error
	})
}

func (s *gormStore) AppointmentsByUser(ctx context.Context, userID int64) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// DeleteAppointment removes the appointment with the given id, failing
// with gorm.ErrRecordNotFound when it does not exist.
func (s *gormStore) DeleteAppointment(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appointment model.Appointment
		if err := tx.First(&appointment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&appointment).Error
	})
}
