package main

import (
	"log"
	"log/slog"
	"os"

	"newslens/internal/config"
	"newslens/internal/handler"
	"newslens/pkg/llm"
	"newslens/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var newsClient handler.NewsSearcher
	if cfg.NewsAPIKey != "" {
		newsClient = news.NewNewsAPIClient(cfg.NewsAPIKey)
	} else {
		slog.Warn("NEWS_API_KEY not set, news search disabled")
	}

	enricher, err := llm.NewEnricher(cfg.AIProvider, cfg.OpenAIKey)
	if err != nil {
		slog.Warn("AI enrichment disabled", "error", err)
	}

	newsHandler := handler.NewNewsHandler(newsClient)
	enrichHandler := handler.NewEnrichHandler(enricher)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.SearchNews)
	r.POST("/api/ai/enrich", enrichHandler.Enrich)
	r.GET("/health", handler.Health(newsClient != nil, enricher != nil))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
