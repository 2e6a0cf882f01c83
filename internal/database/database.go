package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	// SQLite does not enforce foreign keys unless asked; WAL keeps readers
	// from blocking the single writer.
	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema for all entities. Safe to run on
// every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Technician{},
		&domain.Client{},
		&domain.TaskType{},
		&domain.WorkMode{},
		&domain.Priority{},
		&domain.TicketState{},
		&domain.Ticket{},
		&domain.ActivityRecord{},
	)
}
