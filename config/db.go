package config

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// Connect opens the SQLite database at path, defaulting to library.db
// when path is empty.
func Connect(path string) (*gorm.DB, error) {
	if path == "" {
		path = "library.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
