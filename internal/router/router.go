package router

import (
	"github.com/gin-gonic/gin"

	"gstmitra/internal/handler"
	"gstmitra/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	filingH *handler.FilingHandler,
	assistantH *handler.AssistantHandler,
	knowledgeH *handler.KnowledgeHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Filing routes
	filings := v1.Group("/filings")
	filings.POST("/upload", filingH.Upload)
	filings.GET("", filingH.List)
	filings.GET("/:id", filingH.GetByID)
	filings.GET("/:id/export", filingH.Export)

	// Assistant routes
	v1.POST("/assistant/ask", assistantH.Ask)

	// Knowledge corpus
	v1.GET("/knowledge", knowledgeH.List)

	return r
}
