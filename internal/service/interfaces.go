package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"trendhub/internal/domain"
)

type RedditSource interface {
	HotPosts(ctx context.Context, subreddit string, limit int) ([]domain.TrendItem, error)
	Search(ctx context.Context, keyword string, limit int) ([]domain.TrendItem, error)
}

type GitHubSource interface {
	TrendingRepos(ctx context.Context) ([]domain.TrendItem, error)
}

type HackerNewsSource interface {
	TopStories(ctx context.Context, limit int) ([]domain.TrendItem, error)
	SearchTop(ctx context.Context, keyword string, limit int) ([]domain.TrendItem, error)
}

type NewsAPISource interface {
	TopHeadlines(ctx context.Context, country, category string, pageSize int) ([]domain.TrendItem, error)
	Everything(ctx context.Context, keyword string, pageSize int) ([]domain.TrendItem, error)
}

type FootballSource interface {
	MatchesToday(ctx context.Context) ([]domain.Match, error)
	MatchesRange(ctx context.Context, from, to time.Time, status string) ([]domain.Match, error)
}

type YouTubeSource interface {
	Trending(ctx context.Context, regionCode string, maxResults int) ([]domain.TrendItem, error)
}

type UserStore interface {
	Create(ctx context.Context, user *domain.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type FavoriteStore interface {
	Insert(ctx context.Context, fav *domain.Favorite) (int64, bool, error)
	ListByUser(ctx context.Context, email string) ([]domain.Favorite, error)
	Delete(ctx context.Context, id int64, email string) (bool, error)
}

type HistoryStore interface {
	Insert(ctx context.Context, entry *domain.HistoryEntry) (int64, error)
	ListByUser(ctx context.Context, email string, limit int) ([]domain.HistoryEntry, error)
	Delete(ctx context.Context, id int64, email string) (bool, error)
	ClearByUser(ctx context.Context, email string) error
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountByDayAndCategory(ctx context.Context, since time.Time) ([]domain.TrendCount, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.ActivityEvent) error
	Close() error
}
