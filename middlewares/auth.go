package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// credentials is the fixed username->password table for Basic Auth.
// It is unrelated to the users table served by /register and /login
// and is never written after startup.
var credentials = map[string]string{
	"admin": "password123",
	"user":  "mypassword",
}

func checkAuth(username, password string) bool {
	stored, ok := credentials[username]
	return ok && stored == password
}

// BasicAuth validates HTTP Basic credentials against the fixed table
// before letting the request through.
func BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !checkAuth(username, password) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}
