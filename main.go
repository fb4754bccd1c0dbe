package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfadmin/backend"
	"turfadmin/config"
	"turfadmin/cron"
	"turfadmin/database"
	auditRepoPkg "turfadmin/database/repository/audit"
	"turfadmin/handlers"
	"turfadmin/middleware"
	"turfadmin/routes"
	auditSvc "turfadmin/services/audit"
	"turfadmin/services/dashboard"
	"turfadmin/services/settings"
	"turfadmin/services/slots"
	"turfadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Outbound client for the booking backend.
	api := backend.NewClient(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSec)*time.Second,
	)

	// Async audit pipeline: enqueue in handlers' request path, persist in the
	// background worker.
	auditQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer auditQueue.Close()

	auditRepo := auditRepoPkg.NewMongoAuditRepo()
	cron.InitAuditWorker(auditRepo)

	// Services.
	slotService := slots.NewSlotService(api, auditQueue)
	dashboardService := dashboard.NewDashboardService(api, utils.GetCacheClient())
	settingsService := settings.NewSettingsService()
	auditService := auditSvc.NewAuditService(auditRepo)

	// Handlers.
	authHandler := handlers.NewAuthHandler(api, utils.GetSessionCacheClient())
	slotHandler := handlers.NewSlotHandler(slotService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	auditHandler := handlers.NewAuditHandler(auditService)

	handlerBundle := handlers.NewHandlerBundle(
		authHandler, slotHandler, dashboardHandler, settingsHandler, auditHandler,
	)

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
