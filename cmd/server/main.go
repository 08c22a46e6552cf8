package main

import (
	"log"

	"forum/internal/audit"
	"forum/internal/config"
	"forum/internal/database"
	"forum/internal/events"
	"forum/internal/handler"
	"forum/internal/middleware"
	"forum/internal/repository"
	"forum/internal/service"
	"forum/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	auditLog, err := audit.NewLogger(cfg.AuditLogPath)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}
	defer auditLog.Close()

	// Redis carries live events and the rate limiter. Without it the
	// forum still works; those two features degrade to no-ops.
	var broker events.Broker = events.NoopBroker{}
	var redisBroker *events.RedisBroker
	if cfg.RedisURL != "" {
		redisBroker, err = events.NewRedisBroker(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer redisBroker.Close()
		broker = redisBroker
	} else {
		log.Println("REDIS_URL not set; live events and rate limiting disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	postRepo := repository.NewPostRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)
	archiveRepo := repository.NewArchiveRepository(database.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	postService := service.NewPostService(postRepo, broker, auditLog)
	commentService := service.NewCommentService(commentRepo, postRepo, broker, auditLog)
	adminService := service.NewAdminService(commentRepo, archiveRepo)

	// Handlers
	handlers := handler.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Post:    handler.NewPostHandler(postService),
		Comment: handler.NewCommentHandler(commentService),
		Admin:   handler.NewAdminHandler(adminService),
	}
	if redisBroker != nil {
		handlers.Events = handler.NewEventsHandler(redisBroker)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AccessLog())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.Default())

	if redisBroker != nil {
		limiter := middleware.NewRateLimiter(redisBroker.Client(), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
		router.Use(limiter.Middleware())
	}

	handler.RegisterRoutes(router, handlers, cfg.JWTSecret)

	// Static frontend
	router.Static("/js", cfg.WebRoot+"/js")
	router.Static("/css", cfg.WebRoot+"/css")
	router.StaticFile("/", cfg.WebRoot+"/index.html")
	for _, page := range []string{"index", "post", "login", "register", "my", "admin"} {
		router.StaticFile("/"+page+".html", cfg.WebRoot+"/"+page+".html")
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
