package llm

import (
	"context"
	"fmt"
)

type EnrichInput struct {
	Title       string
	Description string
	Content     string
	URL         string
}

// EnrichmentResult always satisfies the fixed shape: Summary100 at most
// 900 characters, Sentiment one of Positive/Negative/Neutral, Takeaways
// exactly three strings.
type EnrichmentResult struct {
	Summary100 string   `json:"summary100"`
	Sentiment  string   `json:"sentiment"`
	Takeaways  []string `json:"takeaways"`
}

type Enricher interface {
	Enrich(ctx context.Context, input EnrichInput) (*EnrichmentResult, error)
}

// NewEnricher builds the enrichment client for the configured provider.
// Only "openai" is wired.
func NewEnricher(provider, apiKey string) (Enricher, error) {
	switch provider {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return NewOpenAIClient(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: openai)", provider)
	}
}
