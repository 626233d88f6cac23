// File: homely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homely/config"
	"homely/cron"
	"homely/database"
	availabilityRepo "homely/database/repository/availability"
	bookingRepo "homely/database/repository/booking"
	catalogRepo "homely/database/repository/catalog"
	"homely/handlers"
	"homely/middleware"
	"homely/routes"
	"homely/services/scheduling"
	"homely/services/tasks"
	"homely/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAvailabilityCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	ledgerRepo := bookingRepo.NewMongoBookingRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()

	if err := catRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}
	if err := ledgerRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Schedule sessions live in Redis with a sliding TTL.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := scheduling.NewSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		CatalogRepo:      catRepo,
		LedgerRepo:       ledgerRepo,
		AvailabilityRepo: availRepo,
		Sessions:         sessionStore,
		Precompute:       &tasks.Enqueuer{Client: asynqClient},
		MaxDaysToScan:    config.AppConfig.MaxDaysToScan,
	}

	cron.InitPrecomputeWorker(schedulingService, catRepo)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	configHandler := handlers.NewConfigHandler(availRepo)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, schedulingHandler, configHandler)

	utils.StartHealthMonitor(database.MongoClient)

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
