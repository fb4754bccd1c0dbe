package handlers

import (
	"net/http"

	"turfadmin/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockHandler handles POST /api/:sport/blocks. Responds with the refreshed
// day schedule so the client never renders from its own optimistic state.
func (h *SlotHandler) BlockHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sport := c.Param("sport")

	var req models.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid block request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	day, err := h.Service.BlockSlot(c.Request.Context(), sess, sport, req)
	if err != nil {
		logger.Error("Failed to block slot",
			zap.String("sport", sport), zap.String("date", req.Date),
			zap.String("start", req.StartTime), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

// UnblockHandler handles DELETE /api/:sport/blocks/:id?date=YYYY-MM-DD.
func (h *SlotHandler) UnblockHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sport := c.Param("sport")
	blockID := c.Param("id")
	date := c.Query("date")

	day, err := h.Service.UnblockSlot(c.Request.Context(), sess, sport, blockID, date)
	if err != nil {
		logger.Error("Failed to unblock slot",
			zap.String("sport", sport), zap.String("blockID", blockID), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// BulkBlockHandler handles POST /api/:sport/blocks/bulk. Partial failures are
// reported per date; a 207 tells the client to inspect the outcome list.
func (h *SlotHandler) BulkBlockHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sport := c.Param("sport")

	var req models.BulkBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid bulk block request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.BlockDates(c.Request.Context(), sess, sport, req)
	if err != nil {
		logger.Error("Bulk block failed", zap.String("sport", sport), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	if !result.Succeeded {
		c.JSON(http.StatusMultiStatus, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
