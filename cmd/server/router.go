package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"inventory-workflow-backend/internal/config"
	"inventory-workflow-backend/internal/handlers"
	"inventory-workflow-backend/internal/logger"
	"inventory-workflow-backend/internal/middleware"
)

// workflowAPI is what the routes need from the workflow service.
type workflowAPI interface {
	handlers.WorkflowActions
	handlers.BatchActions
}

func newRouter(cfg *config.Config, log *logger.Logger, service workflowAPI) *gin.Engine {
	workflowHandler := handlers.NewWorkflowHandler(service)
	batchesHandler := handlers.NewBatchesHandler(service)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Workflow actions
	api.POST("/workflow/upload", workflowHandler.Upload)
	api.POST("/workflow/group", workflowHandler.Group)
	api.POST("/workflow/ungroup", workflowHandler.Ungroup)
	api.POST("/workflow/move", workflowHandler.Move)
	api.POST("/workflow/categorize", workflowHandler.Categorize)
	api.POST("/workflow/describe", workflowHandler.Describe)
	api.POST("/workflow/delete-item", workflowHandler.DeleteItem)
	api.POST("/workflow/summary", workflowHandler.Summary)

	// Batches
	api.POST("/batches", batchesHandler.SaveBatch)
	api.GET("/batches", batchesHandler.ListBatches)
	api.GET("/batches/:batch_id", batchesHandler.OpenBatch)
	api.POST("/batches/finalize", batchesHandler.Finalize)

	return router
}
