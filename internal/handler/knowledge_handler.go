package handler

import (
	"github.com/gin-gonic/gin"

	"gstmitra/internal/port"
)

// KnowledgeHandler exposes the indexed GST policy corpus.
type KnowledgeHandler struct {
	retriever port.KnowledgeRetriever
}

// NewKnowledgeHandler creates a new KnowledgeHandler.
func NewKnowledgeHandler(retriever port.KnowledgeRetriever) *KnowledgeHandler {
	return &KnowledgeHandler{retriever: retriever}
}

// List handles GET /api/v1/knowledge
// @Summary List knowledge corpus documents
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.KnowledgeDocument}
// @Router /knowledge [get]
func (h *KnowledgeHandler) List(c *gin.Context) {
	docs := h.retriever.Documents()
	RespondList(c, docs, len(docs))
}
