package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single value.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Per-sport schedule endpoints
	ScheduleHandler  gin.HandlerFunc
	BookingsHandler  gin.HandlerFunc
	BlockHandler     gin.HandlerFunc
	UnblockHandler   gin.HandlerFunc
	BulkBlockHandler gin.HandlerFunc

	// Admin endpoints
	DashboardHandler      gin.HandlerFunc
	ActivityHandler       gin.HandlerFunc
	GetSettingsHandler    gin.HandlerFunc
	UpdateSettingsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the concrete handlers into a bundle.
func NewHandlerBundle(auth *AuthHandler, slot *SlotHandler, dash *DashboardHandler, set *SettingsHandler, act *AuditHandler) *HandlerBundle {
	return &HandlerBundle{
		LoginHandler:  auth.LoginHandler,
		LogoutHandler: auth.LogoutHandler,

		ScheduleHandler:  slot.ScheduleHandler,
		BookingsHandler:  slot.BookingsHandler,
		BlockHandler:     slot.BlockHandler,
		UnblockHandler:   slot.UnblockHandler,
		BulkBlockHandler: slot.BulkBlockHandler,

		DashboardHandler:      dash.OverviewHandler,
		ActivityHandler:       act.ActivityHandler,
		GetSettingsHandler:    set.GetSettingsHandler,
		UpdateSettingsHandler: set.UpdateSettingsHandler,
	}
}
