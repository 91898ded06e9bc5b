package websearch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Searcher returns up to count result snippets for a query. Implementations
// must treat zero results as a normal outcome, not an error.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]Result, error)
}

const googleSearchURL = "https://www.googleapis.com/customsearch/v1"

// GoogleClient queries the Google Custom Search JSON API.
type GoogleClient struct {
	apiKey   string
	engineID string
	http     *resty.Client
	limiter  *rate.Limiter
	cache    *Cache
}

type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewGoogleClient creates a Custom Search client. cache may be nil.
func NewGoogleClient(apiKey, engineID string, cache *Cache) *GoogleClient {
	return &GoogleClient{
		apiKey:   apiKey,
		engineID: engineID,
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", "tender-expert/1.0"),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		cache:   cache,
	}
}

// Search runs one Custom Search query. Results are cached per query string.
func (g *GoogleClient) Search(ctx context.Context, query string, count int) ([]Result, error) {
	if g.apiKey == "" || g.engineID == "" {
		return nil, fmt.Errorf("google search is not configured")
	}
	if count <= 0 || count > 10 {
		count = 10 // CSE caps num at 10 per request
	}

	cacheKey := fmt.Sprintf("%s|%d", query, count)
	if g.cache != nil {
		if cached, ok := g.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var parsed googleResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": g.apiKey,
			"cx":  g.engineID,
			"q":   query,
			"num": strconv.Itoa(count),
		}).
		SetResult(&parsed).
		Get(googleSearchURL)
	if err != nil {
		return nil, fmt.Errorf("google search request: %w", err)
	}
	if resp.IsError() {
		if parsed.Error.Message != "" {
			return nil, fmt.Errorf("google search error (code %d): %s", parsed.Error.Code, parsed.Error.Message)
		}
		return nil, fmt.Errorf("google search: unexpected status %d", resp.StatusCode())
	}

	results := make([]Result, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, Result(item))
	}

	if g.cache != nil {
		g.cache.Set(cacheKey, results)
	}
	return results, nil
}
