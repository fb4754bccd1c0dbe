package handlers

import (
	"errors"
	"net/http"
	"time"

	"turfadmin/backend"
	"turfadmin/config"
	"turfadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler exchanges admin credentials for a session token. The backend
// token obtained at login is held server-side in the session store; the
// client only ever sees the signed session JWT.
type AuthHandler struct {
	Backend  backend.API
	Sessions *redis.Client
}

func NewAuthHandler(api backend.API, sessions *redis.Client) *AuthHandler {
	return &AuthHandler{Backend: api, Sessions: sessions}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	backendToken, err := h.Backend.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Backend login failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login failed: " + err.Error()})
		return
	}

	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	session := utils.AdminSession{
		SessionID:    uuid.New().String(),
		Username:     req.Username,
		BackendToken: backendToken,
		CreatedAt:    time.Now(),
	}
	if err := utils.SaveAdminSession(c.Request.Context(), h.Sessions, session, ttl); err != nil {
		logger.Error("Failed to persist admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := utils.GenerateSessionToken(session.SessionID, ttl)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	logger.Info("Admin logged in", zap.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"token": token, "username": req.Username})
}

// LogoutHandler handles POST /api/auth/logout. Deleting the session revokes
// the JWT immediately even though its expiry lies in the future.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	if err := utils.DeleteAdminSession(c.Request.Context(), h.Sessions, sess.SessionID); err != nil {
		logger.Error("Failed to delete admin session", zap.String("sessionID", sess.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
