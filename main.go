package main

import (
	"log"
	"os"

	"github.com/ishankanani/Library-Management/config"
	"github.com/ishankanani/Library-Management/controllers"
	"github.com/ishankanani/Library-Management/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to the SQLite database
	db, err := config.Connect(os.Getenv("DATABASE_PATH"))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Set the global DB in the config package and migrate models
	controllers.MigrateModels(db)

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// Protected routes using Basic Auth middleware
	auth := r.Group("/")
	auth.Use(middlewares.BasicAuth())
	auth.POST("/books", controllers.AddBook)
	auth.GET("/books", controllers.GetBooks)
	auth.PUT("/books/:id", controllers.UpdateBook)
	auth.DELETE("/books/:id", controllers.DeleteBook)
	auth.POST("/members", controllers.AddMember)
	auth.GET("/members", controllers.GetMembers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
