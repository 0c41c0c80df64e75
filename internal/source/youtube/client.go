package youtube

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

const SourceID = "youtube"

// Config holds YouTube Data API client configuration.
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

// Trending fetches the mostPopular chart for a region code.
func (c *Client) Trending(ctx context.Context, regionCode string, maxResults int) ([]domain.TrendItem, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", regionCode)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.apiKey)

	u := fmt.Sprintf("%s/videos?%s", c.baseURL, params.Encode())

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

	var vr videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return c.transform(vr.Items), nil
}

func (c *Client) transform(videos []video) []domain.TrendItem {
	items := make([]domain.TrendItem, 0, len(videos))

	for _, v := range videos {
		views, _ := strconv.ParseInt(v.Statistics.ViewCount, 10, 64)

		items = append(items, domain.TrendItem{
			Title:   v.Snippet.Title,
			URL:     "https://youtube.com/watch?v=" + v.ID,
			Channel: v.Snippet.ChannelTitle,
			Views:   views,
		})
	}

	return items
}
