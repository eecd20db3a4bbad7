package handler

import (
	"log/slog"
	"net/http"

	"newslens/pkg/llm"

	"github.com/gin-gonic/gin"
)

type EnrichHandler struct {
	enricher llm.Enricher
}

// NewEnrichHandler accepts a nil enricher when the AI provider is not
// configured; requests then fail with a configuration error before any
// upstream call.
func NewEnrichHandler(enricher llm.Enricher) *EnrichHandler {
	return &EnrichHandler{enricher: enricher}
}

func (h *EnrichHandler) Enrich(c *gin.Context) {
	if h.enricher == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "AI provider is not configured. Set AI_PROVIDER=openai and OPENAI_API_KEY in your environment or .env file.",
		})
		return
	}

	var req EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid enrich request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.enricher.Enrich(c.Request.Context(), llm.EnrichInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		URL:         req.URL,
	})
	if err != nil {
		slog.Error("error enriching article", "error", err, "url", req.URL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enrich article"})
		return
	}

	c.JSON(http.StatusOK, result)
}
