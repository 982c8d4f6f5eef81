package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstmitra/internal/service"
)

// AssistantHandler handles the question-answering endpoint.
type AssistantHandler struct {
	assistantService service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// AskRequest represents the assistant question request body.
type AskRequest struct {
	Query string `json:"query" binding:"required" example:"When is GSTR-3B due?"`
}

// Ask handles POST /api/v1/assistant/ask
// @Summary Ask a GST question
// @Description Answer a free-text GST question from the knowledge corpus
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} APIResponse{data=domain.AssistantAnswer}
// @Failure 400 {object} APIResponse "Empty query"
// @Router /assistant/ask [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must contain a query field")
		return
	}

	answer, err := h.assistantService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, answer)
}
