package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sitzy/internal/config"
	"sitzy/internal/handlers"
	"sitzy/internal/i18n"
	"sitzy/internal/middleware"
	repos "sitzy/internal/repositories/postgres"
	"sitzy/internal/services"
	"sitzy/pkg/cache"
	"sitzy/pkg/database"
	"sitzy/pkg/logger"
	"sitzy/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewPostgres(&database.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
		Debug:           cfg.App.Debug,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to postgres")
	}
	defer db.Close()

	if err := database.Migrate(db.DB); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// The cache is a read-side optimization; the service runs without it.
	var redisCache repos.Cache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisCache(&cache.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
		} else {
			redisCache = rc
			defer rc.Close()
		}
	}

	localizer := i18n.NewLocalizer(cfg.App.Language)

	userRepo := repos.NewUserRepository(db.DB, redisCache)
	carRepo := repos.NewCarRepository(db.DB)
	invitationRepo := repos.NewInvitationRepository(db.DB, redisCache)
	passengerRepo := repos.NewPassengerRepository(db.DB)
	seatRepo := repos.NewSeatRepository(db.DB)
	carDriverRepo := repos.NewCarDriverRepository(db.DB)

	authService := services.NewAuthService(userRepo, cfg.Security, appLogger)
	carService := services.NewCarService(carRepo, appLogger)
	invitationService := services.NewInvitationService(invitationRepo, carRepo, passengerRepo, userRepo, appLogger)
	seatService := services.NewSeatService(seatRepo, passengerRepo, carRepo, userRepo, appLogger)
	driverService := services.NewDriverService(carDriverRepo, carRepo, userRepo, appLogger)
	dashboardService := services.NewDashboardService(carRepo, passengerRepo, invitationRepo)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.LanguageMiddleware(localizer))
	router.Use(middleware.RequestLogger(appLogger))

	routes.Setup(router, &routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, localizer),
		Car:        handlers.NewCarHandler(carService, localizer),
		Invitation: handlers.NewInvitationHandler(invitationService, localizer),
		Seat:       handlers.NewSeatHandler(seatService, localizer),
		Driver:     handlers.NewDriverHandler(driverService, localizer),
		Dashboard:  handlers.NewDashboardHandler(dashboardService, localizer),
		Ride:       handlers.NewRideHandler(localizer),
	}, authService, localizer)

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		c.JSON(status, gin.H{
			"status":   "ok",
			"version":  cfg.App.Version,
			"database": dbStatus,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Graceful shutdown failed")
	}
}
