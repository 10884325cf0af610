package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"ev-booking-backend/internal/model"
)

var seedLocations = []model.Location{
	{Name: "Shopping Center", Address: "Av. Principal, 123"},
	{Name: "Estação Central", Address: "Rua da Estação, 45"},
	{Name: "Supermercado X", Address: "Av. Comercial, 789"},
	{Name: "Bodytech", Address: "Av. Dom Hélder Câmara, 5474 - Cachambi, Rio de Janeiro - RJ, 20771-004"},
	{Name: "Shopping Nova America", Address: "Av. Pastor Martin Luther King Jr., 126 - Del Castilho, Rio de Janeiro - RJ, 20765-000"},
	{Name: "Super Mercados Guanabara", Address: "Rua da Estação. RJ, 45"},
	{Name: "Supermercado A", Address: "Av. Comercial, 800"},
	{Name: "Estacionamento x", Address: "Av. Dom Hélder Câmara, 0001 - Cachambi, Rio de Janeiro - RJ, 20371-004"},
}

var seedChargerStatuses = []string{
	model.ChargerAvailable,
	model.ChargerUnavailable,
	model.ChargerMaintenance,
	model.ChargerAvailable,
	model.ChargerAvailable,
	model.ChargerAvailable,
	model.ChargerMaintenance,
	model.ChargerAvailable,
}

// Seed inserts the initial locations and chargers, one charger per
// location. It is a no-op when any location already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Location{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding database with initial locations and chargers...")
	return db.Transaction(func(tx *gorm.DB) error {
		locations := make([]model.Location, len(seedLocations))
		copy(locations, seedLocations)
		if err := tx.Create(&locations).Error; err != nil {
			return fmt.Errorf("failed to seed locations: %w", err)
		}

		chargers := make([]model.Charger, len(locations))
		for i, loc := range locations {
			chargers[i] = model.Charger{LocationID: loc.ID, Status: seedChargerStatuses[i]}
		}
		if err := tx.Create(&chargers).Error; err != nil {
			return fmt.Errorf("failed to seed chargers: %w", err)
		}
		return nil
	})
}
