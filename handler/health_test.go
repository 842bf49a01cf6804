package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/service"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(service.MapAssetSource{})

	router := gin.New()
	router.GET("/health", h.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status ok, got %s", response["status"])
	}
}

func TestReadyHandler(t *testing.T) {
	logo := logoPNG(t)
	tests := []struct {
		name           string
		source         service.MapAssetSource
		expectedStatus int
	}{
		{"assets present", service.MapAssetSource{"tu-logo.png": logo, "line.png": logo}, http.StatusOK},
		{"logo missing", service.MapAssetSource{"line.png": logo}, http.StatusServiceUnavailable},
		{"line missing", service.MapAssetSource{"tu-logo.png": logo}, http.StatusServiceUnavailable},
		{"logo not an image", service.MapAssetSource{"tu-logo.png": []byte("x"), "line.png": logo}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.source, "tu-logo.png", "line.png")

			router := gin.New()
			router.GET("/ready", h.Ready)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
