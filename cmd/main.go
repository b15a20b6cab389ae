package main

import (
	"log"
	"net/http"
	"time"

	"vitaplan/database"
	"vitaplan/docs"
	"vitaplan/internal/cache"
	"vitaplan/internal/config"
	"vitaplan/internal/controllers"
	"vitaplan/internal/middleware"
	"vitaplan/internal/observability"
	"vitaplan/internal/reminder"
	"vitaplan/internal/repository"
	"vitaplan/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET_KEY is empty; tokens signed with an empty key will be accepted")
	}

	observability.InitLogger("./logs/api.log")
	observability.InitMetrics()
	logger := observability.Logger
	defer logger.Sync()

	docs.SwaggerInfo.Title = "Vitaplan Scheduling API"
	docs.SwaggerInfo.Description = "Activity scheduling and reminder API for the Vitaplan health tracker."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	if err := database.Connect(cfg.DatabaseURL); err != nil {
		logger.Fatal("database_connect_failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("database_migrate_failed", zap.Error(err))
	}

	// Acknowledgment markers live in Redis so a reload never re-surfaces a
	// reminder the user already saw. Without Redis they are process-local.
	var ackStore reminder.AckStore
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis_connect_failed", zap.Error(err))
		}
		defer redisClient.Close()
		ackStore = reminder.NewRedisAckStore(redisClient)
		logger.Info("ack_store_ready", zap.String("backend", "redis"))
	} else {
		ackStore = reminder.NewMemoryAckStore()
		logger.Info("ack_store_ready", zap.String("backend", "memory"))
	}

	activityRepo := repository.NewActivityRepository(database.DB)
	reminderService := reminder.NewService(activityRepo, ackStore)

	activityController := controllers.NewActivityController(activityRepo)
	reminderController := controllers.NewReminderController(reminderService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.CORSOrigins},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Vitaplan scheduling API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterReminderRoutes(router, reminderController)
	routes.RegisterSwaggerRoutes(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logger.Info("server_starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server_failed", zap.Error(err))
	}
}
