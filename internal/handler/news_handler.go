package handler

import (
	"context"
	"log/slog"
	"net/http"

	"newslens/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsSearcher interface {
	Search(ctx context.Context, q news.Query) (*news.SearchResult, error)
}

type NewsHandler struct {
	client NewsSearcher
}

// NewNewsHandler accepts a nil client when no NEWS_API_KEY is
// configured; requests then fail with a configuration error before any
// upstream call.
func NewNewsHandler(client NewsSearcher) *NewsHandler {
	return &NewsHandler{client: client}
}

func (h *NewsHandler) SearchNews(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "NEWS_API_KEY is not set. Add it to your environment or .env file.",
		})
		return
	}

	q := news.Query{
		Q:        c.Query("q"),
		Country:  c.Query("country"),
		Category: c.Query("category"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		PageSize: c.DefaultQuery("pageSize", "10"),
		Page:     c.DefaultQuery("page", "1"),
		SortBy:   c.DefaultQuery("sortBy", "publishedAt"),
	}

	res, err := h.client.Search(c.Request.Context(), q)
	if err != nil {
		slog.Error("error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, res)
}
