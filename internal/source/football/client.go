package football

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

const SourceID = "football"

// StatusFinished filters a date-range query to completed matches.
const StatusFinished = "FINISHED"

// Config holds football-data.org client configuration. The API key travels
// in the X-Auth-Token header.
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
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceID),
		now:        time.Now,
	}
}

// MatchesToday fetches matches scheduled or played today (UTC).
func (c *Client) MatchesToday(ctx context.Context) ([]domain.Match, error) {
	today := c.now().UTC().Format("2006-01-02")
	return c.matches(ctx, today, today, "")
}

// MatchesRange fetches matches between two dates (inclusive), optionally
// filtered to a status such as FINISHED.
func (c *Client) MatchesRange(ctx context.Context, from, to time.Time, status string) ([]domain.Match, error) {
	return c.matches(ctx, from.UTC().Format("2006-01-02"), to.UTC().Format("2006-01-02"), status)
}

func (c *Client) matches(ctx context.Context, dateFrom, dateTo, status string) ([]domain.Match, error) {
	params := url.Values{}
	params.Set("dateFrom", dateFrom)
	params.Set("dateTo", dateTo)
	if status != "" {
		params.Set("status", status)
	}

	u := fmt.Sprintf("%s/matches?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var mr matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return c.transform(mr.Matches), nil
}

func (c *Client) transform(matches []apiMatch) []domain.Match {
	out := make([]domain.Match, 0, len(matches))

	for _, m := range matches {
		out = append(out, domain.Match{
			HomeTeam:    m.HomeTeam.Name,
			AwayTeam:    m.AwayTeam.Name,
			Competition: m.Competition.Name,
			Date:        m.UTCDate,
			Score:       scoreString(m.Score.FullTime.Home, m.Score.FullTime.Away),
			Status:      m.Status,
			Category:    "sports",
		})
	}

	return out
}

// scoreString renders "home-away", treating an absent side as 0.
func scoreString(home, away *int) string {
	h, a := 0, 0
	if home != nil {
		h = *home
	}
	if away != nil {
		a = *away
	}
	return fmt.Sprintf("%d-%d", h, a)
}
