package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fitclub_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens (creating if needed) the single-file sqlite store at dbPath
// and migrates the schema.
func InitDB(dbPath string) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Error creating database directory: %q", err)
		}
	}

	var err error
	db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Error opening database: %q", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %q", err)
	}

	fmt.Println("Successfully connected to the database!")
}

// migrate creates or updates the eight application tables. Unique indexes on
// users.username and rooms.room_number come from the model tags.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Trainer{},
		&models.Room{},
		&models.Club{},
		&models.Client{},
		&models.Membership{},
		&models.Visit{},
		&models.Payment{},
	)
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return db
}
