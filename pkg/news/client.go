package news

import "context"

// Article is the normalized record exposed to the frontend. Author and
// URLToImage serialize as null when the upstream omits them; the other
// text fields default to empty strings. PublishedAt is passed through
// as an opaque string, never parsed.
type Article struct {
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	Author      *string `json:"author"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
}

// Query carries the inbound filter parameters. PageSize and Page are
// forwarded verbatim as strings, without numeric validation.
type Query struct {
	Q        string
	Country  string
	Category string
	From     string
	To       string
	PageSize string
	Page     string
	SortBy   string
}

type SearchResult struct {
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type NewsClient interface {
	Search(ctx context.Context, q Query) (*SearchResult, error)
}
