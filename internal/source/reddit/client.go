package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"trendhub/internal/domain"
)

const SourceID = "reddit"

// permalinkHost is prefixed to post permalinks, which Reddit returns
// host-relative.
const permalinkHost = "https://reddit.com"

// Config holds Reddit client configuration.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches public listing JSON from Reddit. No authentication is used;
// a desktop browser User-Agent keeps the listing endpoints happy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceID),
	}
}

// HotPosts fetches the hot listing of a subreddit ("all" for the front page).
func (c *Client) HotPosts(ctx context.Context, subreddit string, limit int) ([]domain.TrendItem, error) {
	u := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", c.baseURL, url.PathEscape(subreddit), limit)

	l, err := c.fetchListing(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch r/%s hot: %w", subreddit, err)
	}

	return c.transform(l), nil
}

// Search runs a sitewide keyword search sorted by hot.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]domain.TrendItem, error) {
	u := fmt.Sprintf("%s/search.json?q=%s&sort=hot&limit=%d", c.baseURL, url.QueryEscape(keyword), limit)

	l, err := c.fetchListing(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	return c.transform(l), nil
}

func (c *Client) fetchListing(ctx context.Context, u string) (*listing, error) {
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

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &l, nil
}

func (c *Client) transform(l *listing) []domain.TrendItem {
	items := make([]domain.TrendItem, 0, len(l.Data.Children))

	for _, child := range l.Data.Children {
		p := child.Data
		items = append(items, domain.TrendItem{
			Author:    p.Author,
			Title:     p.Title,
			URL:       permalinkHost + p.Permalink,
			Subreddit: p.Subreddit,
		})
	}

	return items
}
