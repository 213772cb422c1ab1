package controllers

import (
	"errors"
	"net/http"

	"github.com/ishankanani/Library-Management/config"
	"github.com/ishankanani/Library-Management/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddMember registers a new library member.
func AddMember(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}

	name, _ := data["name"].(string)
	email, _ := data["email"].(string)
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}

	var existing models.Member
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Member with this email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add member"})
		return
	}

	member := models.Member{Name: name, Email: email}
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member added successfully"})
}

// GetMembers lists every member.
func GetMembers(c *gin.Context) {
	members := make([]models.Member, 0)
	if err := config.DB.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
