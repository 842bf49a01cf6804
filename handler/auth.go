package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/middleware"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
)

// TokenHandler issues the bearer tokens that unlock the cover download
// routes when auth is enabled.
type TokenHandler struct {
	auth  *config.AuthConfig
	users []config.User
}

func NewTokenHandler(cfg *config.Config) *TokenHandler {
	return &TokenHandler{auth: &cfg.Auth, users: cfg.Users}
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse follows the OAuth2 token response shape so generic clients
// can read it.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	ExpiresAt   string `json:"expires_at"`
	Username    string `json:"username"`
}

// Issue exchanges a configured username and password for a token.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	username, ok := h.authenticate(req.Username, req.Password)
	if !ok {
		metrics.LoginAttempts.WithLabelValues(metrics.ResultError).Inc()
		logger.Warn(c.Request.Context(), "token request rejected", "username", req.Username, "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(username, h.auth)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to sign token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	metrics.LoginAttempts.WithLabelValues(metrics.ResultSuccess).Inc()

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		Username:    username,
	})
}

// authenticate compares every configured user so timing does not reveal
// which usernames exist.
func (h *TokenHandler) authenticate(username, password string) (string, bool) {
	matched := ""
	for _, u := range h.users {
		nameOK := subtle.ConstantTimeCompare([]byte(u.Username), []byte(username))
		passOK := subtle.ConstantTimeCompare([]byte(u.Password), []byte(password))
		if nameOK&passOK == 1 {
			matched = u.Username
		}
	}
	return matched, matched != ""
}

// Whoami reports the user the request's token belongs to. Documents
// generated with the same token carry this name as lastModifiedBy.
func (h *TokenHandler) Whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": middleware.GetUsername(c)})
}
