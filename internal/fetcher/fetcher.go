package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"news_dashboard/internal/models"
)

const (
	SourceNews = "news"
	SourceBlog = "blog"
)

// Client fetches one upstream source and returns canonical articles.
type Client interface {
	Source() string
	Fetch(ctx context.Context) ([]models.Article, error)
}

// FetchError carries the failure classification reported to the views.
type FetchError struct {
	Kind    models.ErrorKind
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// classify maps a transport or HTTP failure onto an error kind. Status
// classification follows the upstream APIs: 429 for rate limiting, 401
// for a bad key.
func classify(err error, status int, source string) *FetchError {
	switch {
	case err != nil && isTimeout(err):
		return &FetchError{Kind: models.ErrTimeout, Message: source + " API request timed out"}
	case status == http.StatusTooManyRequests:
		return &FetchError{Kind: models.ErrRateLimited, Message: source + " API rate limit exceeded"}
	case status == http.StatusUnauthorized:
		return &FetchError{Kind: models.ErrUnauthorized, Message: "invalid " + source + " API key"}
	default:
		return &FetchError{Kind: models.ErrGeneric, Message: "failed to fetch " + source + " content"}
	}
}

// NewsClient talks to the keyed news search API.
type NewsClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewNewsClient(baseURL, apiKey string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (c *NewsClient) Source() string {
	return SourceNews
}

func (c *NewsClient) Fetch(ctx context.Context) ([]models.Article, error) {
	url := fmt.Sprintf("%s?keywords=technology&language=en&apiKey=%s", c.baseURL, c.apiKey)
	var payload models.NewsAPIResponse
	if err := getJSON(ctx, c.http, url, SourceNews, &payload); err != nil {
		return nil, err
	}
	return NormalizeNews(payload.News), nil
}

// BlogClient talks to the public blog articles API.
type BlogClient struct {
	http    *http.Client
	baseURL string
}

func NewBlogClient(baseURL string, timeout time.Duration) *BlogClient {
	return &BlogClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *BlogClient) Source() string {
	return SourceBlog
}

func (c *BlogClient) Fetch(ctx context.Context) ([]models.Article, error) {
	url := c.baseURL + "?per_page=30"
	var payload []models.BlogArticle
	if err := getJSON(ctx, c.http, url, SourceBlog, &payload); err != nil {
		return nil, err
	}
	return NormalizeBlog(payload), nil
}

func getJSON(ctx context.Context, client *http.Client, url, source string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return classify(err, 0, source)
	}

	resp, err := client.Do(req)
	if err != nil {
		// http.Client wraps the context error; unwrap for classification.
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return classify(err, 0, source)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classify(nil, resp.StatusCode, source)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return classify(err, 0, source)
	}
	return nil
}
