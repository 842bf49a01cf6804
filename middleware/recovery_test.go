package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
)

func newPanickingRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.POST("/api/cover/download", func(c *gin.Context) {
		panic("assembler exploded")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRecoveryReturnsRequestID(t *testing.T) {
	router := newPanickingRouter()
	before := testutil.ToFloat64(metrics.PanicsRecovered.WithLabelValues("/api/cover/download"))

	req := httptest.NewRequest(http.MethodPost, "/api/cover/download", nil)
	req.Header.Set(HeaderRequestID, "cover-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got %q: %v", w.Body.String(), err)
	}
	if body["request_id"] != "cover-42" {
		t.Errorf("Expected request_id cover-42, got %q", body["request_id"])
	}
	if body["error"] != "Internal server error" {
		t.Errorf("Unexpected error message %q", body["error"])
	}

	after := testutil.ToFloat64(metrics.PanicsRecovered.WithLabelValues("/api/cover/download"))
	if after-before != 1 {
		t.Errorf("Expected panic counter to grow by 1, grew by %v", after-before)
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	router := newPanickingRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
