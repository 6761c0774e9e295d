package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/config"
	"github.com/truckwise/fleetops-backend-go/internal/middleware"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// AuthHandler issues API tokens for the configured operator account
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest is the body for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if h.cfg.OperatorPassword == "" {
		response.Error(c, http.StatusForbidden, "Operator login is not configured", nil)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.OperatorUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.OperatorPassword)) == 1
	if !userOK || !passOK {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := middleware.IssueToken(h.cfg.JWTSecret, req.Username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	response.Success(c, gin.H{"token": token})
}
