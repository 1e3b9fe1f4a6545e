package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campora/scs-api/api/swagger"
	"github.com/campora/scs-api/internal/handler"
	"github.com/campora/scs-api/internal/middleware"
	"github.com/campora/scs-api/internal/repository"
	"github.com/campora/scs-api/internal/service"
	"github.com/campora/scs-api/pkg/cache"
	"github.com/campora/scs-api/pkg/config"
	"github.com/campora/scs-api/pkg/database"
	"github.com/campora/scs-api/pkg/logger"
	corsmiddleware "github.com/campora/scs-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campora/scs-api/pkg/middleware/requestid"
	"github.com/campora/scs-api/pkg/payment"
)

// @title Summer Camp School API
// @version 1.0.0
// @description Course-enrollment platform backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	mongoClient, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("document store unavailable", "error", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("cache unavailable, continuing without it", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.HomeTTL, logr, true)
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	contactRepo := repository.NewContactRepository(db)

	intents := payment.NewStripeClient(cfg.Payment.SecretKey)

	userSvc := service.NewUserService(userRepo, cacheSvc, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, validate, logr)
	selectionSvc := service.NewSelectionService(selectionRepo, validate, logr)
	paymentSvc := service.NewPaymentService(paymentRepo, intents, cfg.Payment.Currency, validate, logr)
	contactSvc := service.NewContactService(contactRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Users:      userRepo,
		Courses:    courseRepo,
		Payments:   paymentRepo,
		Selections: selectionRepo,
		Contacts:   contactRepo,
		Cache:      cacheSvc,
		CacheTTL:   cfg.Cache.DashboardTTL,
		Logger:     logr,
	})
	exportSvc := service.NewExportService(paymentRepo, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := mongoClient.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, handler.Handlers{
		Users:      handler.NewUserHandler(userSvc),
		Courses:    handler.NewCourseHandler(courseSvc),
		Selections: handler.NewSelectionHandler(selectionSvc),
		Payments:   handler.NewPaymentHandler(paymentSvc),
		Dashboard:  handler.NewDashboardHandler(dashboardSvc, exportSvc),
		Contact:    handler.NewContactHandler(contactSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
