package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" driver used below
	_ "modernc.org/sqlite"
)

// Connect opens the datastore handle. A postgres:// DSN points at the
// managed database shared with the auth service; anything else is treated
// as a SQLite file path for local development.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		// Warn keeps routine spot queries out of the request log
		Logger: glogger.Default.LogMode(glogger.Warn),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("spotshot: connecting to managed Postgres")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("spotshot: opening local SQLite database:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}
