package router

import (
	"github.com/gin-gonic/gin"

	"docreview/internal/handler"
	"docreview/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	sessionH *handler.SessionHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Review session routes
	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/edits", sessionH.ApplyEdits)
	sessions.GET("/:id/documents/:doc/pages/:page/fields/:field", sessionH.Field)
	sessions.GET("/:id/documents/:doc/pages/:page/error", sessionH.PageError)

	// Export routes
	sessions.GET("/:id/export/text", exportH.Text)
	sessions.GET("/:id/export/csv", exportH.CSV)
	sessions.GET("/:id/export/xlsx", exportH.XLSX)
	sessions.POST("/:id/export/upload", exportH.Upload)

	return r
}
