package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/whisperlink/server/internal/config"
	"github.com/whisperlink/server/internal/database"
	"github.com/whisperlink/server/internal/handler"
	"github.com/whisperlink/server/internal/middleware"
	"github.com/whisperlink/server/internal/namegen"
	"github.com/whisperlink/server/internal/repository"
	"github.com/whisperlink/server/internal/service"
	"github.com/whisperlink/server/pkg/logger"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the store; the handle is injected everywhere, no globals
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Database connected and migrated")

	// Redis backs the per-IP rate limiters
	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpt)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	linkRepo := repository.NewLinkRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	generator := namegen.NewGenerator()
	linkService := service.NewLinkService(linkRepo, messageRepo, generator)
	messageService := service.NewMessageService(messageRepo, linkRepo, generator)

	// Initialize handlers
	linkHandler := handler.NewLinkHandler(linkService)
	messageHandler := handler.NewMessageHandler(messageService)

	// Rate limiters (fixed window, per IP)
	createLinkLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		Action:      "create_link",
		MaxRequests: cfg.CreateLinkMaxRequests,
		Window:      cfg.CreateLinkWindow,
		Message:     "Too many links created. Please try again later.",
	})
	sendMessageLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		Action:      "send_message",
		MaxRequests: cfg.SendMessageMaxRequests,
		Window:      cfg.SendMessageWindow,
		Message:     "Too many messages sent. Please try again later.",
	})

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the whisperlink API",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/links/create", createLinkLimiter.Middleware(), linkHandler.Create)
		api.GET("/links", linkHandler.List)
		api.POST("/links/:linkId/toggle-visibility", linkHandler.ToggleVisibility)
		api.GET("/links/:linkId/info", linkHandler.Info)

		api.POST("/messages/:linkId/send", sendMessageLimiter.Middleware(), messageHandler.Send)
		api.GET("/messages/:linkId", messageHandler.List)
		api.DELETE("/messages/:messageId", messageHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
