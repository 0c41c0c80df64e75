package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trendhub/internal/domain"
)

const SourceID = "hackernews"

// Config holds Hacker News client configuration.
type Config struct {
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	ItemInterval time.Duration
}

// Client walks the Firebase API: one request for the top-story ids, then one
// request per story. Item fetches are paced by a rate limiter so the walk
// never hits the API faster than one item per ItemInterval.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Every(cfg.ItemInterval), 1),
		logger:     logger.With("source", SourceID),
	}
}

// TopStories returns up to limit of the current top stories.
func (c *Client) TopStories(ctx context.Context, limit int) ([]domain.TrendItem, error) {
	return c.walkTop(ctx, limit, "")
}

// SearchTop walks up to limit top stories and keeps only those whose title
// contains the keyword, case-insensitively.
func (c *Client) SearchTop(ctx context.Context, keyword string, limit int) ([]domain.TrendItem, error) {
	return c.walkTop(ctx, limit, keyword)
}

func (c *Client) walkTop(ctx context.Context, limit int, keyword string) ([]domain.TrendItem, error) {
	ids, err := c.topStoryIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch top stories: %w", err)
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}

	items := make([]domain.TrendItem, 0, len(ids))
	for _, id := range ids {
		if err := c.limiter.Wait(ctx); err != nil {
			return items, err
		}

		it, err := c.fetchItem(ctx, id)
		if err != nil {
			// One dead item must not sink the walk.
			c.logger.Warn("fetch item failed", "id", id, "error", err)
			continue
		}

		if keyword != "" && !strings.Contains(strings.ToLower(it.Title), strings.ToLower(keyword)) {
			continue
		}

		items = append(items, c.transform(it))
	}

	return items, nil
}

func (c *Client) topStoryIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.getJSON(ctx, c.baseURL+"/topstories.json", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) fetchItem(ctx context.Context, id int64) (*item, error) {
	var it item
	if err := c.getJSON(ctx, fmt.Sprintf("%s/item/%d.json", c.baseURL, id), &it); err != nil {
		return nil, err
	}
	it.ID = id
	return &it, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) transform(it *item) domain.TrendItem {
	u := it.URL
	if u == "" {
		// Ask-HN style posts have no outbound link; point at the discussion.
		u = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", it.ID)
	}

	return domain.TrendItem{
		Author: it.By,
		Title:  it.Title,
		URL:    u,
	}
}
