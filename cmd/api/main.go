package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jobhub/jobhub-api/internal/auth"
	"github.com/jobhub/jobhub-api/internal/config"
	"github.com/jobhub/jobhub-api/internal/database"
	"github.com/jobhub/jobhub-api/internal/handlers"
	"github.com/jobhub/jobhub-api/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Logger
	var zl *zap.Logger
	if cfg.Production() {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// 3. Database Connection
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}
	logger.Infow("Database connection established")

	// 4. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	customerService := services.NewCustomerService(db)

	// 5. Session token issuer + auth middleware
	issuer, err := auth.NewTokenIssuer(cfg.AccessTokenSecret)
	if err != nil {
		logger.Fatalw("Failed to create token issuer", "error", err)
	}
	authMiddleware := auth.NewMiddleware(issuer, logger)

	// 6. Initialize Handlers
	authHandler := handlers.NewAuthHandler(issuer, cfg.Production(), logger)
	jobHandler := handlers.NewJobHandler(jobService, logger)
	applicationHandler := handlers.NewApplicationHandler(applicationService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)

	// 7. Setup Router & CORS
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	// Cookies cross origins: credentialed CORS, no wildcard
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	handlers.RegisterRoutes(r, authMiddleware, authHandler, jobHandler, applicationHandler, customerHandler)

	logger.Infow("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("Server failed to start", "error", err)
	}
}
