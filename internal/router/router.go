// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/annuaire-ia/backend/internal/config"
	"github.com/annuaire-ia/backend/internal/handlers"
	"github.com/annuaire-ia/backend/internal/middleware"
	"github.com/annuaire-ia/backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	categoryService := services.NewCategoryService(db)
	tagService := services.NewTagService(db)
	toolService := services.NewToolService(db)
	reviewService := services.NewReviewService(db)
	submissionService := services.NewSubmissionService(db)
	settingsService := services.NewSettingsService(db)
	contactService := services.NewContactService(db)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	toolHandler := handlers.NewToolHandler(toolService, reviewService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	adminHandler := handlers.NewAdminHandler(submissionService, settingsService)
	contactHandler := handlers.NewContactHandler(contactService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.GeneralPerSecond, cfg.RateLimit.GeneralBurst))

	submitLimit := middleware.SubmitRateLimit(cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.SubmitBurst)

	// Health check
	r.GET("/health", healthHandler.Check)

	// Catalog routes
	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("/:slug", categoryHandler.GetCategory)
		categories.PUT("/:slug", categoryHandler.UpdateCategory)
		categories.DELETE("/:slug", categoryHandler.DeleteCategory)
	}

	tools := r.Group("/tools")
	{
		tools.GET("", toolHandler.GetTools)
		tools.POST("", toolHandler.CreateTool)
		tools.GET("/:slug", toolHandler.GetTool)
		tools.PUT("/:slug", toolHandler.UpdateTool)
		tools.DELETE("/:slug", toolHandler.DeleteTool)
		tools.GET("/:slug/reviews", toolHandler.GetToolReviews)
		tools.POST("/:slug/reviews", submitLimit, toolHandler.CreateToolReview)
	}

	tags := r.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.POST("", tagHandler.CreateTag)
		tags.GET("/:slug", tagHandler.GetTag)
		tags.PUT("/:slug", tagHandler.UpdateTag)
		tags.DELETE("/:slug", tagHandler.DeleteTag)
	}

	// Public submission and contact form
	r.POST("/submit", submitLimit, submissionHandler.CreateSubmission)
	r.POST("/contact", submitLimit, contactHandler.CreateContact)

	// Admin routes. Authentication is enforced by the fronting proxy, not
	// in this process.
	admin := r.Group("/admin")
	{
		admin.GET("/submissions", adminHandler.GetSubmissions)
		admin.POST("/submissions/:id/approve", adminHandler.ApproveSubmission)
		admin.POST("/submissions/:id/reject", adminHandler.RejectSubmission)
		admin.GET("/settings", adminHandler.GetSettings)
		admin.POST("/settings", adminHandler.UpdateSettings)
	}

	return r
}
