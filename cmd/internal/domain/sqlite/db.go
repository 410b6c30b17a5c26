package sqlite

import (
	"path/filepath"
	"time"

	"campusnotes/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init() (*gorm.DB, error) {
	dbPath := filepath.Join(".", "database.db")
	return open(dbPath)
}

// InitMemory opens a throwaway in-memory database, used by tests.
func InitMemory() (*gorm.DB, error) {
	return open(":memory:")
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Note{},
		&entity.Attachment{},
		&entity.Like{},
		&entity.Comment{},
		&entity.Mention{},
		&entity.User{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
