package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"trendhub/internal/domain"
	"trendhub/internal/source/football"
	"trendhub/internal/source/youtube"
)

// sportsFallbackDays is the trailing window queried when today has no
// matches.
const sportsFallbackDays = 7

// TrendsService runs the fetch-normalize-concatenate-shuffle pipeline over
// the configured upstreams. Every upstream call is independently guarded: a
// failing source logs a warning and contributes nothing, and the request
// still succeeds with whatever the other sources returned.
type TrendsService struct {
	reddit   RedditSource
	github   GitHubSource
	hn       HackerNewsSource
	news     NewsAPISource
	football FootballSource
	youtube  YouTubeSource
	logger   *slog.Logger

	hnTopLimit    int
	hnSearchLimit int

	shuffle func([]domain.TrendItem)
	now     func() time.Time
}

func NewTrendsService(
	reddit RedditSource,
	github GitHubSource,
	hn HackerNewsSource,
	news NewsAPISource,
	fb FootballSource,
	yt YouTubeSource,
	logger *slog.Logger,
	hnTopLimit, hnSearchLimit int,
) *TrendsService {
	return &TrendsService{
		reddit:        reddit,
		github:        github,
		hn:            hn,
		news:          news,
		football:      fb,
		youtube:       yt,
		logger:        logger,
		hnTopLimit:    hnTopLimit,
		hnSearchLimit: hnSearchLimit,
		shuffle: func(items []domain.TrendItem) {
			rand.Shuffle(len(items), func(i, j int) {
				items[i], items[j] = items[j], items[i]
			})
		},
		now: time.Now,
	}
}

// feedSpec is one upstream feed of a multi-source aggregation: the fetch plus
// the category tag and source label stamped onto its items.
type feedSpec struct {
	category string
	source   string
	fetch    func(ctx context.Context) ([]domain.TrendItem, error)
}

// RedditHot returns the top ten hot posts of r/all.
func (s *TrendsService) RedditHot(ctx context.Context) ([]domain.TrendItem, error) {
	items, err := s.reddit.HotPosts(ctx, "all", 15)
	if err != nil {
		s.logger.Warn("reddit hot failed", "error", err)
		return []domain.TrendItem{}, nil
	}
	if len(items) > 10 {
		items = items[:10]
	}
	return items, nil
}

// GitHubTrending returns recently created repositories ordered by stars.
func (s *TrendsService) GitHubTrending(ctx context.Context) ([]domain.TrendItem, error) {
	items, err := s.github.TrendingRepos(ctx)
	if err != nil {
		s.logger.Warn("github trending failed", "error", err)
		return []domain.TrendItem{}, nil
	}
	return stamp(items, "trending_repos", ""), nil
}

// GlobalNews aggregates the configured news feeds in their fixed order and
// shuffles the concatenation. Output order carries no meaning.
func (s *TrendsService) GlobalNews(ctx context.Context) []domain.TrendItem {
	return s.aggregate(ctx, s.newsFeeds())
}

// Search aggregates the three keyword-capable sources and shuffles the
// result. Items carry the keyword they were found for.
func (s *TrendsService) Search(ctx context.Context, keyword string) []domain.TrendItem {
	items := s.aggregate(ctx, s.searchFeeds(keyword))
	for i := range items {
		items[i].Keyword = keyword
	}
	return items
}

func (s *TrendsService) aggregate(ctx context.Context, feeds []feedSpec) []domain.TrendItem {
	all := make([]domain.TrendItem, 0, 64)

	for _, f := range feeds {
		items, err := f.fetch(ctx)
		if err != nil {
			s.logger.Warn("feed failed", "feed", f.source, "error", err)
			continue
		}
		all = append(all, stamp(items, f.category, f.source)...)
	}

	s.shuffle(all)
	return all
}

func (s *TrendsService) newsFeeds() []feedSpec {
	sub := func(name string, limit int) func(ctx context.Context) ([]domain.TrendItem, error) {
		return func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.reddit.HotPosts(ctx, name, limit)
		}
	}

	return []feedSpec{
		{"world_news", "Reddit WorldNews", sub("worldnews", 20)},
		{"tech_news", "Hacker News", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.hn.TopStories(ctx, s.hnTopLimit)
		}},
		{"tech_news", "Reddit Technology", sub("technology", 20)},
		{"programming_news", "Reddit Programming", sub("programming", 15)},
		{"science_news", "Reddit Science", sub("science", 15)},
		{"business_news", "Reddit Business", sub("business", 10)},
		{"gaming_news", "Reddit Gaming", sub("gaming", 10)},
		{"breaking_news", "NewsAPI", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.news.TopHeadlines(ctx, "us", "", 20)
		}},
		{"business_news", "NewsAPI Business", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.news.TopHeadlines(ctx, "us", "business", 15)
		}},
		{"tech_news", "NewsAPI Tech", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.news.TopHeadlines(ctx, "us", "technology", 15)
		}},
	}
}

func (s *TrendsService) searchFeeds(keyword string) []feedSpec {
	return []feedSpec{
		{"reddit_search", "Reddit", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.reddit.Search(ctx, keyword, 20)
		}},
		{"hackernews_search", "Hacker News", func(ctx context.Context) ([]domain.TrendItem, error) {
			items, err := s.hn.SearchTop(ctx, keyword, s.hnSearchLimit)
			for i := range items {
				items[i].Subreddit = "hackernews"
			}
			return items, err
		}},
		{"news_search", "NewsAPI", func(ctx context.Context) ([]domain.TrendItem, error) {
			return s.news.Everything(ctx, keyword, 20)
		}},
	}
}

// Sports returns today's matches, falling back to finished matches from the
// trailing week when today is empty. This is the canonical two-step policy.
func (s *TrendsService) Sports(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.football.MatchesToday(ctx)
	if err != nil {
		s.logger.Warn("football today failed", "error", err)
		matches = nil
	}

	if len(matches) == 0 {
		to := s.now()
		from := to.AddDate(0, 0, -sportsFallbackDays)
		matches, err = s.football.MatchesRange(ctx, from, to, football.StatusFinished)
		if err != nil {
			s.logger.Warn("football fallback failed", "error", err)
			return []domain.Match{}, nil
		}
	}

	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches, nil
}

// YouTubeTrending maps the country name to a region code (unknown names fall
// back to the US chart) and fetches the trending videos.
func (s *TrendsService) YouTubeTrending(ctx context.Context, country string) ([]domain.TrendItem, error) {
	items, err := s.youtube.Trending(ctx, youtube.RegionCode(country), 10)
	if err != nil {
		s.logger.Warn("youtube trending failed", "error", err)
		return []domain.TrendItem{}, nil
	}
	return stamp(items, "youtube_trends", ""), nil
}

func stamp(items []domain.TrendItem, category, source string) []domain.TrendItem {
	for i := range items {
		items[i].Category = category
		if source != "" {
			items[i].Source = source
		}
	}
	return items
}
