package controllers

import (
	"errors"
	"net/http"

	"github.com/ishankanani/Library-Management/config"
	"github.com/ishankanani/Library-Management/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register creates a new user account.
func Register(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	username, _ := data["username"].(string)
	password, _ := data["password"].(string)
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	var existing models.User
	err := config.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	user := models.User{Username: username, Password: password}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login checks a username/password pair against the users table. The 401
// body is identical for an unknown user and a wrong password.
func Login(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing username or password"})
		return
	}
	if _, ok := data["username"]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing username or password"})
		return
	}
	if _, ok := data["password"]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing username or password"})
		return
	}

	username, _ := data["username"].(string)
	password, _ := data["password"].(string)

	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to look up user"})
		return
	}
	if err == nil && user.Password == password {
		c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully!"})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
}
