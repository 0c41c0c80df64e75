package github

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

const SourceID = "github"

// windowDays is how far back the created-after filter reaches when searching
// for recently created repositories.
const windowDays = 30

// Config holds GitHub client configuration.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client queries the GitHub search API for recently created repositories
// ordered by stars. Unauthenticated; the search endpoint allows it at the
// request rates this service produces.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceID),
		now:        time.Now,
	}
}

// TrendingRepos returns the ten most starred repositories created in the
// trailing month.
func (c *Client) TrendingRepos(ctx context.Context) ([]domain.TrendItem, error) {
	createdAfter := c.now().AddDate(0, 0, -windowDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", "created:>"+createdAfter)
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", "10")

	u := fmt.Sprintf("%s/search/repositories?%s", c.baseURL, params.Encode())

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

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return c.transform(sr.Items), nil
}

func (c *Client) transform(repos []repo) []domain.TrendItem {
	items := make([]domain.TrendItem, 0, len(repos))

	for _, r := range repos {
		items = append(items, domain.TrendItem{
			Title:       r.FullName,
			FullName:    r.FullName,
			Description: r.Description,
			URL:         r.HTMLURL,
			Owner:       r.Owner.Login,
			Stars:       r.Stars,
			Watchers:    r.Watchers,
			CreatedAt:   r.CreatedAt,
		})
	}

	return items
}
