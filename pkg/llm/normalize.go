package llm

import (
	"encoding/json"
	"strings"
)

const (
	maxSummaryChars = 900
	takeawayCount   = 3

	sentimentPositive = "Positive"
	sentimentNegative = "Negative"
	sentimentNeutral  = "Neutral"
)

func fallbackResult() EnrichmentResult {
	return EnrichmentResult{
		Summary100: "Summary unavailable due to a parsing error.",
		Sentiment:  sentimentNeutral,
		Takeaways: []string{
			"The AI response could not be parsed.",
			"Try the request again.",
			"The article content may be too short.",
		},
	}
}

// parseEnrichment trims and parses a model completion, falling back to
// a fixed result on malformed output. The returned result always
// satisfies the EnrichmentResult invariant.
func parseEnrichment(content string) EnrichmentResult {
	var parsed EnrichmentResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil {
		return fallbackResult()
	}
	return normalizeEnrichment(parsed)
}

// normalizeEnrichment coerces an untrusted result into the fixed shape:
// summary capped at 900 characters, sentiment restricted to the three
// allowed labels, exactly three takeaways.
func normalizeEnrichment(r EnrichmentResult) EnrichmentResult {
	if runes := []rune(r.Summary100); len(runes) > maxSummaryChars {
		r.Summary100 = string(runes[:maxSummaryChars])
	}

	switch r.Sentiment {
	case sentimentPositive, sentimentNegative, sentimentNeutral:
	default:
		r.Sentiment = sentimentNeutral
	}

	if len(r.Takeaways) > takeawayCount {
		r.Takeaways = r.Takeaways[:takeawayCount]
	}
	for len(r.Takeaways) < takeawayCount {
		r.Takeaways = append(r.Takeaways, "")
	}

	return r
}
