package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ishankanani/Library-Management/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh per-test database.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "library.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	MigrateModels(db)
}

// setupRouter mirrors the route table wired in main.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	auth := r.Group("/")
	auth.Use(middlewares.BasicAuth())
	auth.POST("/books", AddBook)
	auth.GET("/books", GetBooks)
	auth.PUT("/books/:id", UpdateBook)
	auth.DELETE("/books/:id", DeleteBook)
	auth.POST("/members", AddMember)
	auth.GET("/members", GetMembers)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body any, withAuth bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.SetBasicAuth("admin", "password123")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
	return payload["message"]
}
