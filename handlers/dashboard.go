package handlers

import (
	"net/http"

	"turfadmin/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the facility-wide overview.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// OverviewHandler handles GET /api/admin/dashboard.
func (h *DashboardHandler) OverviewHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	data, err := h.Service.Overview(c.Request.Context(), sess)
	if err != nil {
		logger.Error("Failed to load dashboard overview", zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
