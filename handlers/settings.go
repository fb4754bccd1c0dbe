package handlers

import (
	"net/http"

	"turfadmin/models"
	"turfadmin/services/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler reads and updates the facility settings.
type SettingsHandler struct {
	Service settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

// GetSettingsHandler handles GET /api/admin/settings.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	if _, ok := sessionFrom(c); !ok {
		return
	}
	c.JSON(http.StatusOK, h.Service.Get())
}

// UpdateSettingsHandler handles PUT /api/admin/settings. The payload replaces
// the settings wholesale; a rejected update leaves the previous state intact.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	logger := getLogger(c)

	if _, ok := sessionFrom(c); !ok {
		return
	}
	var req models.FacilitySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid settings payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(req)
	if err != nil {
		logger.Error("Settings update rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
