package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database, unique per test so
// state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Location{},
		&model.Charger{},
		&model.Appointment{},
	))
	return db
}

func TestUserLookups(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	ctx := context.Background()

	user := &model.User{Name: "João da Silva", Email: "joao@email.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)

	byEmail, err := s.UserByEmail(ctx, "joao@email.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := s.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "joao@email.com", byID.Email)

	_, err = s.UserByEmail(ctx, "ninguem@email.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFirstChargerAtLocation(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	loc := &model.Location{Name: "Shopping Center", Address: "Av. Principal, 123"}
	require.NoError(t, s.CreateLocation(ctx, loc))
	empty := &model.Location{Name: "Supermercado X", Address: "Av. Comercial, 789"}
	require.NoError(t, s.CreateLocation(ctx, empty))

	require.NoError(t, s.CreateCharger(ctx, &model.Charger{ID: 5, LocationID: loc.ID, Status: model.ChargerMaintenance}))
	require.NoError(t, s.CreateCharger(ctx, &model.Charger{ID: 2, LocationID: loc.ID, Status: model.ChargerAvailable}))

	// Lowest id wins regardless of status.
	first, err := s.FirstChargerAtLocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.ID)

	_, err = s.FirstChargerAtLocation(ctx, empty.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteLocationCascades(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	user := &model.User{Name: "João", Email: "joao@email.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))

	doomed := &model.Location{Name: "Estação Central", Address: "Rua da Estação, 45"}
	require.NoError(t, s.CreateLocation(ctx, doomed))
	survivor := &model.Location{Name: "Bodytech", Address: "Av. Dom Hélder Câmara, 5474"}
	require.NoError(t, s.CreateLocation(ctx, survivor))

	doomedCharger := &model.Charger{LocationID: doomed.ID, Status: model.ChargerAvailable}
	require.NoError(t, s.CreateCharger(ctx, doomedCharger))
	survivorCharger := &model.Charger{LocationID: survivor.ID, Status: model.ChargerAvailable}
	require.NoError(t, s.CreateCharger(ctx, survivorCharger))

	start := time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC)
	doomedAp := &model.Appointment{UserID: user.ID, ChargerID: doomedCharger.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: model.AppointmentConfirmed}
	require.NoError(t, s.CreateAppointment(ctx, doomedAp))
	survivorAp := &model.Appointment{UserID: user.ID, ChargerID: survivorCharger.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: model.AppointmentConfirmed}
	require.NoError(t, s.CreateAppointment(ctx, survivorAp))

	require.NoError(t, s.DeleteLocation(ctx, doomed.ID))

	var chargerCount, appointmentCount int64
	db.Model(&model.Charger{}).Where("location_id = ?", doomed.ID).Count(&chargerCount)
	assert.Zero(t, chargerCount, "chargers of the deleted location should be gone")
	db.Model(&model.Appointment{}).Where("charger_id = ?", doomedCharger.ID).Count(&appointmentCount)
	assert.Zero(t, appointmentCount, "appointments on deleted chargers should be gone")

	_, err := s.ChargerByID(ctx, survivorCharger.ID)
	assert.NoError(t, err, "other locations' chargers must survive")
	remaining, err := s.AppointmentsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, survivorAp.ID, remaining[0].ID)

	err = s.DeleteLocation(ctx, doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	user := &model.User{Name: "Maria", Email: "maria@email.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))
	other := &model.User{Name: "José", Email: "jose@email.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, other))

	loc := &model.Location{Name: "Supermercado A", Address: "Av. Comercial, 800"}
	require.NoError(t, s.CreateLocation(ctx, loc))
	charger := &model.Charger{LocationID: loc.ID, Status: model.ChargerAvailable}
	require.NoError(t, s.CreateCharger(ctx, charger))

	start := time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateAppointment(ctx, &model.Appointment{UserID: user.ID, ChargerID: charger.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: model.AppointmentConfirmed}))
	keep := &model.Appointment{UserID: other.ID, ChargerID: charger.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: model.AppointmentConfirmed}
	require.NoError(t, s.CreateAppointment(ctx, keep))

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.UserByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&model.Appointment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count, "deleted user's appointments should be gone")

	others, err := s.AppointmentsByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestDeleteAppointment(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	user := &model.User{Name: "João", Email: "joao@email.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))
	loc := &model.Location{Name: "Shopping Center", Address: "Av. Principal, 123"}
	require.NoError(t, s.CreateLocation(ctx, loc))
	charger := &model.Charger{LocationID: loc.ID, Status: model.ChargerAvailable}
	require.NoError(t, s.CreateCharger(ctx, charger))

	start := time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC)
	ap := &model.Appointment{UserID: user.ID, ChargerID: charger.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: model.AppointmentConfirmed}
	require.NoError(t, s.CreateAppointment(ctx, ap))

	require.NoError(t, s.DeleteAppointment(ctx, ap.ID))
	assert.ErrorIs(t, s.DeleteAppointment(ctx, ap.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteAppointment(ctx, 999), gorm.ErrRecordNotFound)
}

// TestDeleteAppointmentRollsBack verifies that a failing delete leaves
// the transaction rolled back instead of half-applied.
func TestDeleteAppointmentRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	s := NewGormStore(gormDB)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "charger_id", "start_time", "end_time", "status", "created_at"}).
			AddRow(7, 1, 3, now, now.Add(time.Hour), "confirmed", now))
	mock.ExpectExec(`DELETE FROM "appointments"`).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = s.DeleteAppointment(context.Background(), 7)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
