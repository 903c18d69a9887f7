package database

import (
	"profast/config"
	"profast/logger"
	logModel "profast/models/log"
	"profast/models/parcel"
	"profast/models/payment"
	"profast/models/rider"
	"profast/models/tracking"
	"profast/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection and migrates all models.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := Migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	return DB, nil
}

// Migrate runs the schema migration for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&parcel.Parcel{},
		&rider.Rider{},
		&payment.Payment{},
		&tracking.TrackingEvent{},
		&logModel.Log{},
	)
}
