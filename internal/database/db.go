package database

import (
	"inventario/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a connection pool using GORM and migrates the schema
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Agent{},
		&model.Location{},
		&model.Category{},
		&model.Nomenclature{},
		&model.Asset{},
		&model.InventoryHistory{},
	)
	if err != nil {
		log.Warn().Err(err).Msg("auto-migration failed")
	}

	return db, nil
}
