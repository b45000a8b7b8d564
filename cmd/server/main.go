package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jdifek/fitziz-adminka/internal/common/config"
	"github.com/jdifek/fitziz-adminka/internal/common/logger"
	"github.com/jdifek/fitziz-adminka/internal/common/middleware"
	authHTTP "github.com/jdifek/fitziz-adminka/internal/features/auth/delivery/http"
	authRedis "github.com/jdifek/fitziz-adminka/internal/features/auth/repository/redis"
	authService "github.com/jdifek/fitziz-adminka/internal/features/auth/service"
	featureHTTP "github.com/jdifek/fitziz-adminka/internal/features/feature/delivery/http"
	featureRepo "github.com/jdifek/fitziz-adminka/internal/features/feature/repository/postgres"
	featureService "github.com/jdifek/fitziz-adminka/internal/features/feature/service"
	maskHTTP "github.com/jdifek/fitziz-adminka/internal/features/mask/delivery/http"
	maskRepo "github.com/jdifek/fitziz-adminka/internal/features/mask/repository/postgres"
	maskService "github.com/jdifek/fitziz-adminka/internal/features/mask/service"
	reviewHTTP "github.com/jdifek/fitziz-adminka/internal/features/review/delivery/http"
	reviewRepo "github.com/jdifek/fitziz-adminka/internal/features/review/repository/postgres"
	reviewService "github.com/jdifek/fitziz-adminka/internal/features/review/service"
	settingsHTTP "github.com/jdifek/fitziz-adminka/internal/features/settings/delivery/http"
	settingsRepo "github.com/jdifek/fitziz-adminka/internal/features/settings/repository/postgres"
	settingsService "github.com/jdifek/fitziz-adminka/internal/features/settings/service"
	userHTTP "github.com/jdifek/fitziz-adminka/internal/features/user/delivery/http"
	userRepo "github.com/jdifek/fitziz-adminka/internal/features/user/repository/postgres"
	userService "github.com/jdifek/fitziz-adminka/internal/features/user/service"
	videoHTTP "github.com/jdifek/fitziz-adminka/internal/features/video/delivery/http"
	videoRepo "github.com/jdifek/fitziz-adminka/internal/features/video/repository/postgres"
	videoService "github.com/jdifek/fitziz-adminka/internal/features/video/service"
	"github.com/jdifek/fitziz-adminka/internal/platform/postgres"
	"github.com/jdifek/fitziz-adminka/internal/platform/redis"
	"github.com/jdifek/fitziz-adminka/internal/platform/telegram"
)

// @title           FITSIZ Admin API
// @version         1.0
// @description     Backend of the FITSIZ welding mask catalog admin panel.

// @host      localhost:3333
// @BasePath  /

// @securityDefinitions.apikey AdminToken
// @in header
// @name Authorization
// @description Bearer token issued by POST /admin/login

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("fitziz-adminka", cfg.Debug)

	log.Info().Bool("debug", cfg.Debug).Msg("starting fitziz admin backend")

	postgresClient, err := postgres.NewClient(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer postgresClient.Close()

	redisClient, err := redis.New(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	telegramClient, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create telegram client")
	}

	pool := postgresClient.Pool()

	maskRepository := maskRepo.NewPostgresRepository(pool)
	videoRepository := videoRepo.NewPostgresRepository(pool)
	userRepository := userRepo.NewPostgresRepository(pool)
	featureRepository := featureRepo.NewPostgresRepository(pool)
	reviewRepository := reviewRepo.NewPostgresRepository(pool)
	settingsRepository := settingsRepo.NewPostgresRepository(pool)

	authSvc := authService.NewAuthService(cfg.Admin.Username, cfg.Admin.Password,
		authRedis.NewSessionStore(redisClient))
	settingsSvc := settingsService.NewSettingsService(settingsRepository, userRepository, telegramClient)
	maskSvc := maskService.NewMaskService(maskRepository, settingsSvc)
	videoSvc := videoService.NewVideoService(videoRepository)
	userSvc := userService.NewUserService(userRepository)
	featureSvc := featureService.NewFeatureService(featureRepository)
	reviewSvc := reviewService.NewReviewService(reviewRepository)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	public := router.Group("")
	admin := router.Group("/admin")
	admin.Use(middleware.RequireSession(authSvc))

	authHTTP.NewAuthHandler(authSvc).RegisterRoutes(public, admin)
	maskHTTP.NewMaskHandler(maskSvc).RegisterRoutes(public, admin)
	videoHTTP.NewVideoHandler(videoSvc).RegisterRoutes(public, admin)
	userHTTP.NewUserHandler(userSvc).RegisterRoutes(admin)
	featureHTTP.NewFeatureHandler(featureSvc).RegisterRoutes(admin)
	reviewHTTP.NewReviewHandler(reviewSvc).RegisterRoutes(admin)
	settingsHTTP.NewSettingsHandler(settingsSvc).RegisterRoutes(admin)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "fitziz-adminka",
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		checkCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := postgresClient.HealthCheck(checkCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "postgres unavailable"})
			return
		}
		if err := redisClient.Ping(checkCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "error": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
