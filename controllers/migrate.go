package controllers

import (
	"github.com/ishankanani/Library-Management/config"
	"github.com/ishankanani/Library-Management/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.Book{}, &models.Member{}, &models.User{})
}
