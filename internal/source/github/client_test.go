package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTrendingRepos(t *testing.T) {
	fixedNow := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		assert.Equal(t, "created:>2026-03-01", r.URL.Query().Get("q"))
		assert.Equal(t, "stars", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Write([]byte(`{
			"items": [
				{
					"full_name": "acme/rocket",
					"description": "a fast rocket",
					"html_url": "https://github.com/acme/rocket",
					"created_at": "2026-03-20T10:00:00Z",
					"stargazers_count": 4200,
					"watchers_count": 4200,
					"owner": {"login": "acme"}
				}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL, UserAgent: "test-agent", Timeout: 5 * time.Second}, testLogger())
	client.now = func() time.Time { return fixedNow }

	items, err := client.TrendingRepos(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme/rocket", items[0].Title)
	assert.Equal(t, "acme/rocket", items[0].FullName)
	assert.Equal(t, "a fast rocket", items[0].Description)
	assert.Equal(t, "https://github.com/acme/rocket", items[0].URL)
	assert.Equal(t, "acme", items[0].Owner)
	assert.Equal(t, 4200, items[0].Stars)
	assert.Equal(t, 4200, items[0].Watchers)
}

func TestTrendingRepos_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	client := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, testLogger())

	_, err := client.TrendingRepos(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 403")
}
