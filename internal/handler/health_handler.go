package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstmitra/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	retriever port.KnowledgeRetriever
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(retriever port.KnowledgeRetriever) *HealthHandler {
	return &HealthHandler{retriever: retriever}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if len(h.retriever.Documents()) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "knowledge corpus is empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
