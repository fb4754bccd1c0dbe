package handlers

import (
	"net/http"
	"strconv"

	"turfadmin/services/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuditHandler serves the recorded admin activity trail.
type AuditHandler struct {
	Service audit.AuditService
}

func NewAuditHandler(svc audit.AuditService) *AuditHandler {
	return &AuditHandler{Service: svc}
}

// ActivityHandler handles GET /api/admin/activity?limit=N&date=YYYY-MM-DD.
// When a date is given the limit is ignored and the full day is returned.
func (h *AuditHandler) ActivityHandler(c *gin.Context) {
	logger := getLogger(c)

	if _, ok := sessionFrom(c); !ok {
		return
	}

	if date := c.Query("date"); date != "" {
		entries, err := h.Service.ForDate(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to list audit entries by date", zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	entries, err := h.Service.Recent(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent audit entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
