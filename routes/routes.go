package routes

import (
	"net/http"
	"time"

	"turfadmin/handlers"
	"turfadmin/middleware"
	"turfadmin/models"
	"turfadmin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Logout needs a live session to know what to revoke.
		api.POST("/logout", middleware.SessionAuthMiddleware(), hb.LogoutHandler)
	}
}

// RegisterScheduleRoutes registers the per-sport schedule and block endpoints.
// Every route requires a session; the sport param is validated up front so
// handlers never see an unknown sport.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/:sport")
	{
		api.Use(sportGuard())
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/schedule", hb.ScheduleHandler)
		api.GET("/bookings", hb.BookingsHandler)
		api.POST("/blocks", hb.BlockHandler)
		api.DELETE("/blocks/:id", hb.UnblockHandler)
		api.POST("/blocks/bulk", hb.BulkBlockHandler)
	}
}

// RegisterAdminRoutes registers dashboard, activity, and settings endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.SessionAuthMiddleware())
		adminGroup.GET("/dashboard", hb.DashboardHandler)
		adminGroup.GET("/activity", hb.ActivityHandler)
		adminGroup.GET("/settings", hb.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.UpdateSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// sportGuard rejects unknown sport params before any session work happens.
func sportGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.ValidSport(c.Param("sport")) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown sport: " + c.Param("sport")})
			return
		}
		c.Next()
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
