// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"akolite/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Order{},
		&entities.ProductionUnit{},
		&entities.DispatchRecord{},
		&entities.CapacitySetting{},
		&entities.Client{},
		&entities.RawMaterial{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	return db
}

// seed inserts the rows the service assumes exist: the reserved Godown
// holding client. Idempotent, safe to run on every boot.
func seed(db *gorm.DB) error {
	godown := entities.Client{Name: entities.GodownClientName, IsHolding: true}
	return db.Where(entities.Client{Name: entities.GodownClientName}).
		FirstOrCreate(&godown).Error
}
