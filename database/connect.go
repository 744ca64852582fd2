package database

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sampreeth-sv/smart-attendance-new/models"
)

// DB is the read-only student catalog, queried with database/sql.
var DB *sql.DB
var DBMutex sync.Mutex

// GORMDB holds session and check-in rows.
var GORMDB *gorm.DB
var GORMDBMutex sync.Mutex

// Connect opens the student catalog database.
func Connect(path string) error {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open student catalog: %w", err)
	}
	return nil
}

// ConnectGORM opens the attendance store and migrates its tables.
func ConnectGORM(path string) error {
	var err error
	GORMDB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open attendance store: %w", err)
	}
	return GORMDB.AutoMigrate(&models.Session{}, &models.CheckInRecord{})
}

// Connected reports whether the attendance store is available. The session
// registry stays authoritative in memory and skips write-through when it
// is not.
func Connected() bool {
	return GORMDB != nil
}
