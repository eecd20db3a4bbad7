package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a news analysis assistant. You respond with raw JSON only: no markdown fences, no commentary, no text outside the JSON object.`

const promptTemplate = `Analyze the following news article:

%s

Respond with a JSON object in exactly this shape:
{
  "summary100": "a summary of the article in at most 100 words",
  "sentiment": "Positive" or "Negative" or "Neutral",
  "takeaways": ["short takeaway 1", "short takeaway 2", "short takeaway 3"]
}

The takeaways array must contain exactly three short strings. Respond with raw JSON only.`

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// Enrich sends a single completion request and always returns a result
// satisfying the EnrichmentResult invariant when the call itself
// succeeds. Output that fails to parse is replaced with a fixed
// fallback rather than surfaced as an error.
func (c *OpenAIClient) Enrich(ctx context.Context, input EnrichInput) (*EnrichmentResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0.3),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(input)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	result := parseEnrichment(resp.Choices[0].Message.Content)
	return &result, nil
}

// buildPrompt joins the non-empty text fields with blank lines and
// embeds them in the fixed instruction template.
func buildPrompt(input EnrichInput) string {
	var parts []string
	for _, s := range []string{input.Title, input.Description, input.Content} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return fmt.Sprintf(promptTemplate, strings.Join(parts, "\n\n"))
}
