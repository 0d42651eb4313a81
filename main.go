// File: boardroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardroom/config"
	"boardroom/cron"
	"boardroom/database"
	bookingRepoPkg "boardroom/database/repository/booking"
	roomRepoPkg "boardroom/database/repository/room"
	userRepoPkg "boardroom/database/repository/user"
	"boardroom/handlers"
	"boardroom/middleware"
	"boardroom/routes"
	"boardroom/services/backup"
	"boardroom/services/booking"
	"boardroom/services/room"
	"boardroom/services/user"
	"boardroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// operational services.
	backupService := &backup.Service{
		DB:          database.MongoClient.Database(config.AppConfig.DatabaseName),
		Dir:         config.AppConfig.BackupDir,
		Collections: []string{"bookings", "rooms", "users"},
		Logger:      logger,
	}

	worker := cron.NewWorker(backupService)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start background worker: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	roomService := &room.DefaultRoomService{Repo: roomRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		RoomRepo:  roomRepo,
		UserRepo:  userRepo,
		Cache:     &booking.RedisGridCache{Client: utils.GetCacheClient()},
		Reminders: worker,
	}

	// health monitor over every external dependency.
	monitor := utils.NewHealthMonitor(database.MongoClient, []*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
	})
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	monitor.Start(monitorCtx)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Room:     handlers.NewRoomHandler(roomService),
		User:     handlers.NewUserHandler(userService),
		Admin:    handlers.NewAdminHandler(userService, backupService),
		Health:   &handlers.HealthHandler{Monitor: monitor},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	stopMonitor()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
