package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanmind/internal/handler"
	"kanmind/internal/metrics"
	"kanmind/internal/middleware"
	"kanmind/internal/repository"
	"kanmind/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	BasePath       string
	AllowedOrigins []string
	TokenCache     service.TokenCache
	TokenTTL       time.Duration
	BcryptCost     int
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "kanmind"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "kanmind"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "kanmind"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "kanmind"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "kanmind"})
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	tokenRepo := repository.NewTokenRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, cfg.TokenCache, cfg.TokenTTL, cfg.BcryptCost, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, userRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, boardRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)

	// API routes group
	api := r.Group(cfg.BasePath)

	authMiddleware := middleware.Auth(authService)

	// ============================================================
	// Public routes
	// ============================================================
	api.POST("/registration", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// ============================================================
	// Authenticated routes
	// ============================================================
	api.GET("/email-check", authMiddleware, authHandler.CheckEmail)

	boards := api.Group("/boards")
	boards.Use(authMiddleware)
	{
		boards.GET("", boardHandler.ListBoards)
		boards.POST("", boardHandler.CreateBoard)
		boards.GET("/:boardId", boardHandler.GetBoard)
		boards.PATCH("/:boardId", boardHandler.UpdateBoard)
		boards.DELETE("/:boardId", boardHandler.DeleteBoard)
	}

	tasks := api.Group("/tasks")
	tasks.Use(authMiddleware)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/assigned-to-me", taskHandler.ListAssignedToMe)
		tasks.GET("/reviewing", taskHandler.ListReviewing)
		tasks.GET("/:taskId", taskHandler.GetTask)
		tasks.PATCH("/:taskId", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)

		tasks.GET("/:taskId/comments", commentHandler.ListComments)
		tasks.POST("/:taskId/comments", commentHandler.CreateComment)
		tasks.DELETE("/:taskId/comments/:commentId", commentHandler.DeleteComment)
	}

	return r
}
