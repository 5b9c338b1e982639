package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cv360/marketplace/internal/api"
	"github.com/cv360/marketplace/internal/core/service"
	"github.com/cv360/marketplace/internal/infrastructure/config"
	mongodb "github.com/cv360/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/cv360/marketplace/internal/infrastructure/db/redis"
	"github.com/cv360/marketplace/internal/jobs"
	"github.com/cv360/marketplace/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        CV360 Marketplace API
// @version      1.0
// @description  Role-based job marketplace: auth, job postings, applications and admin stats.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, 0)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	jobService := service.NewJobService(jobRepo, userRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, log)
	adminService := service.NewAdminService(userRepo, jobRepo, applicationRepo, statsCache, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:        authService,
		JobService:         jobService,
		ApplicationService: applicationService,
		AdminService:       adminService,
		Mongo:              db,
		Redis:              rdb,
		JWTSecret:          cfg.JWTSecret,
		Logger:             log,
	})

	scheduler := jobs.NewScheduler(adminService, log)
	if err := scheduler.Start(cfg.StatsRefresh); err != nil {
		log.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("cv360 api listening")

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	_ = rdb.Close()
	_ = mongoClient.Disconnect(shutdownCtx)
}
