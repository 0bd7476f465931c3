package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"footyref/models"
)

var DB *gorm.DB

// Models lists every entity migrated at startup, parents before children
var Models = []interface{}{
	&models.Continent{},
	&models.Country{},
	&models.City{},
	&models.League{},
	&models.Stadium{},
	&models.Team{},
	&models.User{},
}

// Initialize sets up the GORM database connection and runs migrations
func Initialize(dbURL string) error {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	var err error
	DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return DB.AutoMigrate(Models...)
}
