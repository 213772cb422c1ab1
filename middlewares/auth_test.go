package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", BasicAuth(), func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestBasicAuthMissingHeader(t *testing.T) {
	var reached bool
	r := protectedRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if payload["message"] != "Authentication required" {
		t.Fatalf("unexpected message: %q", payload["message"])
	}
	if reached {
		t.Fatal("handler ran despite missing credentials")
	}
}

func TestBasicAuthRejectedCredentials(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "eve", "password123"},
		{"wrong password", "admin", "wrong"},
		{"empty password for unknown user", "eve", ""},
	}

	for _, tc := range cases {
		var reached bool
		r := protectedRouter(&reached)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.SetBasicAuth(tc.username, tc.password)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: unexpected status %d", tc.name, rec.Code)
		}
		if reached {
			t.Fatalf("%s: handler ran despite bad credentials", tc.name)
		}
	}
}

func TestBasicAuthValidCredentials(t *testing.T) {
	for username, password := range map[string]string{
		"admin": "password123",
		"user":  "mypassword",
	} {
		var reached bool
		r := protectedRouter(&reached)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.SetBasicAuth(username, password)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", username, rec.Code)
		}
		if !reached {
			t.Fatalf("%s: handler never ran", username)
		}
	}
}
