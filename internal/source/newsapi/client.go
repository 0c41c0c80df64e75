package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trendhub/internal/domain"
)

const SourceID = "newsapi"

// Config holds NewsAPI client configuration. APIKey is required by the
// upstream and passed as a query parameter.
type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceID),
	}
}

// TopHeadlines fetches headlines for a country, optionally narrowed to a
// category ("business", "technology", ...). Empty category means all.
func (c *Client) TopHeadlines(ctx context.Context, country, category string, pageSize int) ([]domain.TrendItem, error) {
	params := url.Values{}
	params.Set("country", country)
	if category != "" {
		params.Set("category", category)
	}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	arts, err := c.fetchArticles(ctx, fmt.Sprintf("%s/top-headlines?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("top headlines: %w", err)
	}

	return transform(arts, false), nil
}

// Everything searches all indexed articles for a keyword, newest first.
func (c *Client) Everything(ctx context.Context, keyword string, pageSize int) ([]domain.TrendItem, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	arts, err := c.fetchArticles(ctx, fmt.Sprintf("%s/everything?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("everything %q: %w", keyword, err)
	}

	return transform(arts, true), nil
}

func (c *Client) fetchArticles(ctx context.Context, u string) ([]article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var ar articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return ar.Articles, nil
}

// transform maps articles to TrendItems. Search results carry the publishing
// outlet in the subreddit slot, which is what the listing UI renders there.
func transform(arts []article, withOutlet bool) []domain.TrendItem {
	items := make([]domain.TrendItem, 0, len(arts))

	for _, a := range arts {
		it := domain.TrendItem{
			Author: a.Author,
			Title:  a.Title,
			URL:    a.URL,
		}
		if withOutlet {
			it.Subreddit = a.Source.Name
			if it.Subreddit == "" {
				it.Subreddit = SourceID
			}
		}
		items = append(items, it)
	}

	return items
}
