package main

import (
	"github.com/gigconnect/marketplace-api/internal/config"
	"github.com/gigconnect/marketplace-api/internal/database"
	"github.com/gigconnect/marketplace-api/internal/handlers"
	"github.com/gigconnect/marketplace-api/internal/logging"
	"github.com/gigconnect/marketplace-api/internal/middleware"
	"github.com/gigconnect/marketplace-api/internal/repository"
	"github.com/gigconnect/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logging.Init(cfg.LogFile, cfg.LogToStdout)
	logging.Logger.Info("Starting GigConnect marketplace API")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logging.Logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logging.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire repositories, services and handlers
	taskRepo := repository.NewTaskRepository(database.GetDB())
	bidRepo := repository.NewBidRepository(database.GetDB())

	taskService := services.NewTaskService(taskRepo)
	bidService := services.NewBidService(bidRepo, taskRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	bidHandler := handlers.NewBidHandler(bidService)
	categoryHandler := handlers.NewCategoryHandler()

	requireAuth := middleware.RequireAuth([]byte(cfg.AuthSecret))

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "GigConnect marketplace API is running",
		})
	})

	// API routes
	api := r.Group("/api/v1")
	{
		api.GET("/categories", categoryHandler.ListCategories)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/latest", taskHandler.LatestTasks)
			tasks.GET("/mine", requireAuth, taskHandler.ListMyTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", requireAuth, taskHandler.CreateTask)
			tasks.PUT("/:id", requireAuth, taskHandler.UpdateTask)
			tasks.DELETE("/:id", requireAuth, taskHandler.DeleteTask)
			tasks.POST("/:id/bids", requireAuth, bidHandler.SubmitBid)
			tasks.GET("/:id/bids", requireAuth, bidHandler.ListBidsForTask)
		}

		api.GET("/bids/mine", requireAuth, bidHandler.ListMyBids)
	}

	// Start server
	logging.Logger.Infof("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
