package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"
)

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 0,
		"model":   "gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestBuildPrompt_JoinsNonEmptyFields(t *testing.T) {
	prompt := buildPrompt(EnrichInput{
		Title:   "Chip makers rally",
		Content: "Full text here.",
	})

	if !strings.Contains(prompt, "Chip makers rally\n\nFull text here.") {
		t.Errorf("prompt missing blank-line joined fields: %q", prompt)
	}
	if strings.Contains(prompt, "\n\n\n") {
		t.Errorf("empty field left a gap in prompt: %q", prompt)
	}
}

func TestBuildPrompt_AllFieldsEmpty(t *testing.T) {
	prompt := buildPrompt(EnrichInput{})

	if !strings.Contains(prompt, "Analyze the following news article") {
		t.Errorf("instruction template missing: %q", prompt)
	}
}

func TestEnrich_ValidOutput(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse(
			`{"summary100":"Chip stocks rallied on strong demand.","sentiment":"Positive","takeaways":["rally","demand","supply"]}`,
		))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", option.WithBaseURL(srv.URL))

	res, err := client.Enrich(context.Background(), EnrichInput{
		Title:       "Chip makers rally",
		Description: "Semiconductor stocks rose.",
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Chip stocks rallied on strong demand.", res.Summary100)
	assert.Equal(t, "Positive", res.Sentiment)
	assert.Equal(t, []string{"rally", "demand", "supply"}, res.Takeaways)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, 0.3, gotBody["temperature"])

	messages := gotBody["messages"].([]interface{})
	assert.Equal(t, 2, len(messages))
	system := messages[0].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	user := messages[1].(map[string]interface{})
	if !strings.Contains(user["content"].(string), "Chip makers rally") {
		t.Errorf("user prompt missing article title: %v", user["content"])
	}
}

func TestEnrich_MalformedOutputFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("I could not produce JSON, sorry."))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", option.WithBaseURL(srv.URL))

	res, err := client.Enrich(context.Background(), EnrichInput{Title: "t"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Summary unavailable due to a parsing error.", res.Summary100)
	assert.Equal(t, "Neutral", res.Sentiment)
	assert.Equal(t, 3, len(res.Takeaways))
}

func TestEnrich_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key",
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)

	_, err := client.Enrich(context.Background(), EnrichInput{Title: "t"})

	assert.NotEqual(t, nil, err)
}

func TestNewEnricher(t *testing.T) {
	if _, err := NewEnricher("openai", ""); err == nil {
		t.Error("expected error for missing api key")
	}

	if _, err := NewEnricher("gemini", "key"); err == nil {
		t.Error("expected error for unknown provider")
	}

	enricher, err := NewEnricher("openai", "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enricher == nil {
		t.Fatal("expected enricher")
	}
}
