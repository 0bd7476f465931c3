// Standalone migration helper: applies the schema and loads the seed
// reference data without starting the HTTP server.
//
//	DATABASE_URL=postgres://... go run scripts/db-migrate.go
package main

import (
	"footyref/config"
	"footyref/database"
	"footyref/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Debug)
	defer logger.Sync()

	logger.Log.Infow("Running database migration", "url_set", cfg.DatabaseURL != "")

	if err := database.Initialize(cfg.DatabaseURL); err != nil {
		logger.Log.Fatalw("Migration failed", "error", err)
	}
	if err := database.Seed(); err != nil {
		logger.Log.Fatalw("Seeding failed", "error", err)
	}

	logger.Log.Infow("Migration complete")
}
