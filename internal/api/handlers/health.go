package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sashabaranov/go-openai"

	"meetscribe/internal/api/dto"
)

// HealthHandler reports service liveness and provider configuration.
type HealthHandler struct {
	client *openai.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(client *openai.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Get handles GET /health.
func (h *HealthHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		OpenAI: lo.Ternary(h.client != nil, "connected", "not configured"),
	})
}
