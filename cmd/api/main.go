package main

import (
	"attareports/internal/config"
	"attareports/internal/database"
	"attareports/internal/middleware"
	"attareports/internal/modules/auth"
	"attareports/internal/modules/catalog"
	"attareports/internal/modules/inspection"
	"attareports/internal/modules/report"
	"attareports/internal/modules/users"
	"attareports/internal/pkg/blob"
	jwtsvc "attareports/internal/pkg/jwt"
	"attareports/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	blobStore, err := blob.NewS3Store(blob.S3Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		log.Fatal("init blob store", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	reportRepo := repository.NewReportRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, tokens)
	userService := users.NewService(userRepo)
	catalogService := catalog.NewService(clientRepo, equipmentRepo)
	inspectionService := inspection.NewService(inspectionRepo)
	reportService := report.NewService(reportRepo, clientRepo, equipmentRepo, userRepo, blobStore, report.UploadLimits{
		MaxSize:      cfg.MaxUploadSize,
		AllowedTypes: cfg.AllowedImageTypes,
	})

	authHandler := auth.NewHandler(authService)
	userHandler := users.NewHandler(userService)
	catalogHandler := catalog.NewHandler(catalogService)
	inspectionHandler := inspection.NewHandler(inspectionService)
	reportHandler := report.NewHandler(reportService, log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS())

	api := engine.Group("/api/v1")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	authHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)
	catalogHandler.RegisterRoutes(protected)
	inspectionHandler.RegisterRoutes(protected)
	reportHandler.RegisterRoutes(protected)

	log.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := engine.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
