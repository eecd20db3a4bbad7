package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"

	// The everything endpoint rejects an empty query, so an unfiltered
	// request falls back to a generic term.
	fallbackQuery = "news"

	unknownSource = "Unknown"
)

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search issues a single upstream call, choosing the headlines endpoint
// when a country or category filter is present and the full-text search
// endpoint otherwise. No retries.
func (c *NewsAPIClient) Search(ctx context.Context, q Query) (*SearchResult, error) {
	endpoint, params := buildRequest(q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr newsAPIError
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("newsapi status %d: %s %s", resp.StatusCode, apiErr.Code, apiErr.Message)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, normalizeArticle(item))
	}

	return &SearchResult{
		TotalResults: raw.TotalResults,
		Articles:     articles,
	}, nil
}

func buildRequest(q Query) (string, url.Values) {
	params := url.Values{}
	params.Set("pageSize", q.PageSize)
	params.Set("page", q.Page)

	if q.Country != "" || q.Category != "" {
		if q.Country != "" {
			params.Set("country", q.Country)
		}
		if q.Category != "" {
			params.Set("category", strings.ToLower(q.Category))
		}
		if q.Q != "" {
			params.Set("q", q.Q)
		}
		return "/top-headlines", params
	}

	term := q.Q
	if term == "" {
		term = fallbackQuery
	}
	params.Set("q", term)
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	params.Set("sortBy", q.SortBy)
	return "/everything", params
}

// normalizeArticle maps a raw upstream record to the Article invariant:
// empty text fields stay empty strings, author and image URL become
// null, the nested source name is flattened.
func normalizeArticle(item rawArticle) Article {
	source := item.Source.Name
	if source == "" {
		source = unknownSource
	}

	return Article{
		Title:       item.Title,
		Source:      source,
		Author:      nullable(item.Author),
		Description: item.Description,
		Content:     item.Content,
		URL:         item.URL,
		URLToImage:  nullable(item.URLToImage),
		PublishedAt: item.PublishedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type newsAPIResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

type newsAPIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type rawArticle struct {
	Source      rawSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

type rawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
