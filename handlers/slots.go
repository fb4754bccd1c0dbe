package handlers

import (
	"net/http"

	"turfadmin/services/slots"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the per-day schedule views and block mutations for one
// sport. The sport comes from the route param, the day from the date query
// (blank means today).
type SlotHandler struct {
	Service slots.SlotService
}

func NewSlotHandler(svc slots.SlotService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

// ScheduleHandler handles GET /api/:sport/schedule?date=YYYY-MM-DD.
func (h *SlotHandler) ScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sport := c.Param("sport")
	date := c.Query("date")

	day, err := h.Service.DaySchedule(c.Request.Context(), sess, sport, date)
	if err != nil {
		logger.Error("Failed to build day schedule",
			zap.String("sport", sport), zap.String("date", date), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// BookingsHandler handles GET /api/:sport/bookings?date=YYYY-MM-DD.
func (h *SlotHandler) BookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := sessionFrom(c)
	if !ok {
		return
	}
	sport := c.Param("sport")
	date := c.Query("date")

	bookings, err := h.Service.Bookings(c.Request.Context(), sess, sport, date)
	if err != nil {
		logger.Error("Failed to fetch bookings",
			zap.String("sport", sport), zap.String("date", date), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
