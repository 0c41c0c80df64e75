// Package server exposes the aggregation pipeline and the account layer over
// HTTP. Trend endpoints return bare JSON arrays and never fail on upstream
// errors; account endpoints return a {success, message, data} envelope.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"trendhub/internal/config"
	"trendhub/internal/domain"
)

// TrendsAPI is the slice of the trends service the handlers consume.
type TrendsAPI interface {
	RedditHot(ctx context.Context) ([]domain.TrendItem, error)
	GitHubTrending(ctx context.Context) ([]domain.TrendItem, error)
	GlobalNews(ctx context.Context) []domain.TrendItem
	Search(ctx context.Context, keyword string) []domain.TrendItem
	Sports(ctx context.Context) ([]domain.Match, error)
	YouTubeTrending(ctx context.Context, country string) ([]domain.TrendItem, error)
}

// AccountsAPI is the slice of the account service the handlers consume.
type AccountsAPI interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	EnsureOAuthUser(ctx context.Context, email string) error
	AddFavorite(ctx context.Context, email, title, url, category, source string) (int64, error)
	ListFavorites(ctx context.Context, email string) ([]domain.Favorite, error)
	DeleteFavorite(ctx context.Context, email string, id int64) error
	AddHistory(ctx context.Context, email, title, url, category, source string) (int64, error)
	ListHistory(ctx context.Context, email string) ([]domain.HistoryEntry, error)
	DeleteHistory(ctx context.Context, email string, id int64) error
	ClearHistory(ctx context.Context, email string) error
	GlobalTrendCounts(ctx context.Context) ([]domain.TrendCount, error)
}

type Server struct {
	trends   TrendsAPI
	accounts AccountsAPI
	store    *sessions.CookieStore
	oauth    *oauthProviders
	logger   *slog.Logger

	allowedOrigin string
	frontendURL   string
}

func New(trends TrendsAPI, accounts AccountsAPI, cfg config.ServerConfig, oauthCfg config.OAuthConfig, logger *slog.Logger) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Server{
		trends:        trends,
		accounts:      accounts,
		store:         store,
		oauth:         newOAuthProviders(oauthCfg),
		logger:        logger,
		allowedOrigin: cfg.AllowedOrigin,
		frontendURL:   cfg.FrontendURL,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)

	mux.HandleFunc("GET /api/reddit", s.handleReddit)
	mux.HandleFunc("GET /api/github", s.handleGitHub)
	mux.HandleFunc("GET /api/news", s.handleNews)
	mux.HandleFunc("GET /api/search/{keyword}", s.handleSearch)
	mux.HandleFunc("GET /api/sports", s.handleSports)
	mux.HandleFunc("GET /api/youtube", s.handleYouTube)
	mux.HandleFunc("GET /api/youtube/{country}", s.handleYouTube)

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("POST /api/change-password", s.requireAuth(s.handleChangePassword))
	mux.HandleFunc("POST /api/reset-password", s.handleResetPassword)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("GET /api/check-oauth-user", s.handleSession)

	mux.HandleFunc("GET /auth/{provider}/login", s.handleOAuthLogin)
	mux.HandleFunc("GET /auth/{provider}/callback", s.handleOAuthCallback)

	mux.HandleFunc("GET /api/favorites", s.requireAuth(s.handleListFavorites))
	mux.HandleFunc("POST /api/favorites", s.requireAuth(s.handleAddFavorite))
	mux.HandleFunc("DELETE /api/favorites/{id}", s.requireAuth(s.handleDeleteFavorite))

	mux.HandleFunc("GET /api/history", s.requireAuth(s.handleListHistory))
	mux.HandleFunc("POST /api/history", s.requireAuth(s.handleAddHistory))
	mux.HandleFunc("DELETE /api/history", s.requireAuth(s.handleClearHistory))
	mux.HandleFunc("DELETE /api/history/{id}", s.requireAuth(s.handleDeleteHistory))

	mux.HandleFunc("GET /api/trends/global", s.handleGlobalTrends)

	return s.cors(mux)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "trendhub backend up"})
}
