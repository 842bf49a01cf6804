package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/middleware"
	"github.com/rabinshresthaaa/CoverPage/model"
	"github.com/rabinshresthaaa/CoverPage/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Auth = config.AuthConfig{Enabled: true, JWTSecret: "test-secret", TokenExpireHours: 2}
	cfg.Users = []config.User{
		{Username: "ms.karki", Password: "lab-cover"},
		{Username: "registrar", Password: "office"},
	}
	return cfg
}

// recordingGenerator remembers who asked for the last cover page.
type recordingGenerator struct {
	requester string
	calls     int
}

func (g *recordingGenerator) Generate(ctx context.Context, input model.CoverPageInput) (*service.Result, error) {
	g.calls++
	g.requester = service.RequesterFrom(ctx)
	return &service.Result{Data: []byte("docx"), Filename: service.Filename, ContentType: service.ContentType}, nil
}

// protectedCoverRouter mirrors the auth-enabled route layout.
func protectedCoverRouter(cfg *config.Config, gen CoverGenerator) *gin.Engine {
	tokens := NewTokenHandler(cfg)
	router := gin.New()
	router.POST("/api/auth/token", tokens.Issue)

	covers := router.Group("", middleware.AuthMiddleware(&cfg.Auth))
	covers.GET("/api/auth/me", tokens.Whoami)
	covers.POST("/api/cover/download", NewCoverHandler(gen).Download)
	return router
}

func requestToken(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func downloadWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/cover/download", strings.NewReader(validForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenHandlerIssue(t *testing.T) {
	router := protectedCoverRouter(tokenTestConfig(), &recordingGenerator{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"second configured user", `{"username":"registrar","password":"office"}`, http.StatusOK},
		{"password of another user", `{"username":"registrar","password":"lab-cover"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"guest","password":"office"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"registrar"}`, http.StatusBadRequest},
		{"not json", `username=registrar`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := requestToken(t, router, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp TokenResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.TokenType != "Bearer" || resp.Username != "registrar" {
				t.Errorf("Unexpected token response %+v", resp)
			}
			// Two hours, allowing for the time spent signing.
			if resp.ExpiresIn <= 7000 || resp.ExpiresIn > 7200 {
				t.Errorf("Expected expires_in close to 7200, got %d", resp.ExpiresIn)
			}
		})
	}
}

func TestCoverDownloadRequiresToken(t *testing.T) {
	gen := &recordingGenerator{}
	router := protectedCoverRouter(tokenTestConfig(), gen)

	if w := downloadWithToken(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", w.Code)
	}
	if w := downloadWithToken(router, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with a malformed token, got %d", w.Code)
	}
	if gen.calls != 0 {
		t.Fatalf("Expected no cover generated for rejected requests, got %d", gen.calls)
	}

	w := requestToken(t, router, `{"username":"ms.karki","password":"lab-cover"}`)
	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse token response: %v", err)
	}

	w = downloadWithToken(router, resp.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with a token, got %d: %s", w.Code, w.Body.String())
	}
	if gen.requester != "ms.karki" {
		t.Errorf("Expected cover requested by ms.karki, got %q", gen.requester)
	}
}

func TestCoverDownloadTokenFromOtherSecret(t *testing.T) {
	cfg := tokenTestConfig()
	router := protectedCoverRouter(cfg, &recordingGenerator{})

	other := cfg.Auth
	other.JWTSecret = "another-deployment"
	token, _, err := middleware.GenerateToken("ms.karki", &other)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := downloadWithToken(router, token); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for a foreign token, got %d", w.Code)
	}
}

func TestTokenHandlerWhoami(t *testing.T) {
	router := protectedCoverRouter(tokenTestConfig(), &recordingGenerator{})

	w := requestToken(t, router, `{"username":"ms.karki","password":"lab-cover"}`)
	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse token response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"username":"ms.karki"`) {
		t.Errorf("Expected username in body, got %s", w.Body.String())
	}
}
