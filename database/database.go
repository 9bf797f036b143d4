package database

import (
	"fmt"
	"os"
	"path/filepath"

	"vikasini/config"
	"vikasini/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database under the data root and runs migrations.
// The handle is returned to the caller for injection, not stored globally.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath()), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single connection: SQLite tolerates one writer at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the seven platform tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Course{},
		&models.UserCourse{},
		&models.Job{},
		&models.JobApplication{},
		&models.UserInterest{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
