package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trendhub/internal/domain"
	"trendhub/internal/service/mocks"
	"trendhub/internal/source/football"
)

type TrendsServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	reddit   *mocks.MockRedditSource
	github   *mocks.MockGitHubSource
	hn       *mocks.MockHackerNewsSource
	news     *mocks.MockNewsAPISource
	football *mocks.MockFootballSource
	youtube  *mocks.MockYouTubeSource

	service *TrendsService
	logger  *slog.Logger
}

func (s *TrendsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.reddit = mocks.NewMockRedditSource(s.ctrl)
	s.github = mocks.NewMockGitHubSource(s.ctrl)
	s.hn = mocks.NewMockHackerNewsSource(s.ctrl)
	s.news = mocks.NewMockNewsAPISource(s.ctrl)
	s.football = mocks.NewMockFootballSource(s.ctrl)
	s.youtube = mocks.NewMockYouTubeSource(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewTrendsService(
		s.reddit,
		s.github,
		s.hn,
		s.news,
		s.football,
		s.youtube,
		s.logger,
		25,
		50,
	)

	// Deterministic order for assertions.
	s.service.shuffle = func([]domain.TrendItem) {}
}

func (s *TrendsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTrendsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrendsServiceTestSuite))
}

func items(titles ...string) []domain.TrendItem {
	out := make([]domain.TrendItem, len(titles))
	for i, t := range titles {
		out[i] = domain.TrendItem{Title: t, URL: "https://example.com/" + t}
	}
	return out
}

func (s *TrendsServiceTestSuite) TestRedditHot_TruncatesToTen() {
	ctx := context.Background()

	hot := items("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l")
	s.reddit.EXPECT().HotPosts(ctx, "all", 15).Return(hot, nil)

	got, err := s.service.RedditHot(ctx)

	s.NoError(err)
	s.Len(got, 10)
	s.Equal("a", got[0].Title)
}

func (s *TrendsServiceTestSuite) TestRedditHot_SourceError() {
	ctx := context.Background()

	s.reddit.EXPECT().HotPosts(ctx, "all", 15).Return(nil, errors.New("timeout"))

	got, err := s.service.RedditHot(ctx)

	s.NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *TrendsServiceTestSuite) TestGitHubTrending_StampsCategory() {
	ctx := context.Background()

	s.github.EXPECT().TrendingRepos(ctx).Return(items("repo1", "repo2"), nil)

	got, err := s.service.GitHubTrending(ctx)

	s.NoError(err)
	s.Len(got, 2)
	for _, it := range got {
		s.Equal("trending_repos", it.Category)
	}
}

func (s *TrendsServiceTestSuite) TestGlobalNews_AggregatesAllFeeds() {
	ctx := context.Background()

	s.reddit.EXPECT().HotPosts(ctx, "worldnews", 20).Return(items("world"), nil)
	s.hn.EXPECT().TopStories(ctx, 25).Return(items("hn"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "technology", 20).Return(items("tech"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "programming", 15).Return(items("prog"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "science", 15).Return(items("sci"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "business", 10).Return(items("biz"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "gaming", 10).Return(items("game"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "", 20).Return(items("head"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "business", 15).Return(items("headbiz"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "technology", 15).Return(items("headtech"), nil)

	got := s.service.GlobalNews(ctx)

	s.Len(got, 10)

	byTitle := make(map[string]domain.TrendItem, len(got))
	for _, it := range got {
		byTitle[it.Title] = it
	}

	s.Equal("world_news", byTitle["world"].Category)
	s.Equal("Reddit WorldNews", byTitle["world"].Source)
	s.Equal("tech_news", byTitle["hn"].Category)
	s.Equal("Hacker News", byTitle["hn"].Source)
	s.Equal("programming_news", byTitle["prog"].Category)
	s.Equal("breaking_news", byTitle["head"].Category)
	s.Equal("NewsAPI", byTitle["head"].Source)
	s.Equal("business_news", byTitle["headbiz"].Category)
	s.Equal("NewsAPI Business", byTitle["headbiz"].Source)
	s.Equal("tech_news", byTitle["headtech"].Category)
	s.Equal("NewsAPI Tech", byTitle["headtech"].Source)
}

func (s *TrendsServiceTestSuite) TestGlobalNews_FailingFeedIsSkipped() {
	ctx := context.Background()

	s.reddit.EXPECT().HotPosts(ctx, "worldnews", 20).Return(items("world"), nil)
	s.hn.EXPECT().TopStories(ctx, 25).Return(nil, errors.New("hn down"))
	s.reddit.EXPECT().HotPosts(ctx, "technology", 20).Return(items("tech"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "programming", 15).Return(nil, errors.New("reddit down"))
	s.reddit.EXPECT().HotPosts(ctx, "science", 15).Return(items("sci"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "business", 10).Return(items("biz"), nil)
	s.reddit.EXPECT().HotPosts(ctx, "gaming", 10).Return(items("game"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "", 20).Return(items("head"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "business", 15).Return(items("headbiz"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", "technology", 15).Return(items("headtech"), nil)

	got := s.service.GlobalNews(ctx)

	s.Len(got, 8)
	for _, it := range got {
		s.NotEqual("prog", it.Title)
		s.NotEqual("hn", it.Title)
	}
}

func (s *TrendsServiceTestSuite) TestGlobalNews_AllFeedsFail() {
	ctx := context.Background()
	down := errors.New("down")

	s.reddit.EXPECT().HotPosts(ctx, gomock.Any(), gomock.Any()).Return(nil, down).Times(6)
	s.hn.EXPECT().TopStories(ctx, 25).Return(nil, down)
	s.news.EXPECT().TopHeadlines(ctx, "us", gomock.Any(), gomock.Any()).Return(nil, down).Times(3)

	got := s.service.GlobalNews(ctx)

	s.NotNil(got)
	s.Empty(got)
}

func (s *TrendsServiceTestSuite) TestGlobalNews_ShufflesAggregate() {
	ctx := context.Background()

	var shuffled int
	s.service.shuffle = func(list []domain.TrendItem) {
		shuffled = len(list)
	}

	s.reddit.EXPECT().HotPosts(ctx, gomock.Any(), gomock.Any()).Return(items("r"), nil).Times(6)
	s.hn.EXPECT().TopStories(ctx, 25).Return(items("hn"), nil)
	s.news.EXPECT().TopHeadlines(ctx, "us", gomock.Any(), gomock.Any()).Return(items("n"), nil).Times(3)

	got := s.service.GlobalNews(ctx)

	s.Len(got, 10)
	s.Equal(10, shuffled)
}

func (s *TrendsServiceTestSuite) TestSearch_StampsKeywordAndSources() {
	ctx := context.Background()

	s.reddit.EXPECT().Search(ctx, "golang", 20).Return(items("rpost"), nil)
	s.hn.EXPECT().SearchTop(ctx, "golang", 50).Return(items("hnpost"), nil)
	s.news.EXPECT().Everything(ctx, "golang", 20).Return(items("article"), nil)

	got := s.service.Search(ctx, "golang")

	s.Len(got, 3)

	byTitle := make(map[string]domain.TrendItem, len(got))
	for _, it := range got {
		s.Equal("golang", it.Keyword)
		byTitle[it.Title] = it
	}

	s.Equal("reddit_search", byTitle["rpost"].Category)
	s.Equal("Reddit", byTitle["rpost"].Source)
	s.Equal("hackernews_search", byTitle["hnpost"].Category)
	s.Equal("hackernews", byTitle["hnpost"].Subreddit)
	s.Equal("news_search", byTitle["article"].Category)
	s.Equal("NewsAPI", byTitle["article"].Source)
}

func (s *TrendsServiceTestSuite) TestSearch_PartialResults() {
	ctx := context.Background()

	s.reddit.EXPECT().Search(ctx, "rust", 20).Return(nil, errors.New("rate limited"))
	s.hn.EXPECT().SearchTop(ctx, "rust", 50).Return(items("hnpost"), nil)
	s.news.EXPECT().Everything(ctx, "rust", 20).Return(nil, errors.New("bad key"))

	got := s.service.Search(ctx, "rust")

	s.Len(got, 1)
	s.Equal("hnpost", got[0].Title)
}

func (s *TrendsServiceTestSuite) TestSports_TodayHasMatches() {
	ctx := context.Background()

	today := []domain.Match{{HomeTeam: "A", AwayTeam: "B", Status: "IN_PLAY"}}
	s.football.EXPECT().MatchesToday(ctx).Return(today, nil)

	got, err := s.service.Sports(ctx)

	s.NoError(err)
	s.Equal(today, got)
}

func (s *TrendsServiceTestSuite) TestSports_FallsBackToTrailingWeek() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return now }

	s.football.EXPECT().MatchesToday(ctx).Return(nil, nil)
	s.football.EXPECT().
		MatchesRange(ctx, now.AddDate(0, 0, -7), now, football.StatusFinished).
		Return([]domain.Match{{HomeTeam: "A", AwayTeam: "B", Status: "FINISHED"}}, nil)

	got, err := s.service.Sports(ctx)

	s.NoError(err)
	s.Len(got, 1)
	s.Equal("FINISHED", got[0].Status)
}

func (s *TrendsServiceTestSuite) TestSports_FallbackAfterTodayError() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return now }

	s.football.EXPECT().MatchesToday(ctx).Return(nil, errors.New("503"))
	s.football.EXPECT().
		MatchesRange(ctx, now.AddDate(0, 0, -7), now, football.StatusFinished).
		Return([]domain.Match{{HomeTeam: "A", AwayTeam: "B"}}, nil)

	got, err := s.service.Sports(ctx)

	s.NoError(err)
	s.Len(got, 1)
}

func (s *TrendsServiceTestSuite) TestSports_BothQueriesFail() {
	ctx := context.Background()

	s.football.EXPECT().MatchesToday(ctx).Return(nil, errors.New("503"))
	s.football.EXPECT().
		MatchesRange(ctx, gomock.Any(), gomock.Any(), football.StatusFinished).
		Return(nil, errors.New("503"))

	got, err := s.service.Sports(ctx)

	s.NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *TrendsServiceTestSuite) TestSports_TruncatesToTen() {
	ctx := context.Background()

	matches := make([]domain.Match, 14)
	s.football.EXPECT().MatchesToday(ctx).Return(matches, nil)

	got, err := s.service.Sports(ctx)

	s.NoError(err)
	s.Len(got, 10)
}

func (s *TrendsServiceTestSuite) TestYouTubeTrending_MapsCountry() {
	ctx := context.Background()

	s.youtube.EXPECT().Trending(ctx, "FR", 10).Return(items("clip"), nil)

	got, err := s.service.YouTubeTrending(ctx, "France")

	s.NoError(err)
	s.Len(got, 1)
	s.Equal("youtube_trends", got[0].Category)
}

func (s *TrendsServiceTestSuite) TestYouTubeTrending_UnknownCountryDefaultsUS() {
	ctx := context.Background()

	s.youtube.EXPECT().Trending(ctx, "US", 10).Return(items("clip"), nil)

	_, err := s.service.YouTubeTrending(ctx, "Atlantis")

	s.NoError(err)
}

func (s *TrendsServiceTestSuite) TestYouTubeTrending_SourceError() {
	ctx := context.Background()

	s.youtube.EXPECT().Trending(ctx, "US", 10).Return(nil, errors.New("quota"))

	got, err := s.service.YouTubeTrending(ctx, "United States")

	s.NoError(err)
	s.NotNil(got)
	s.Empty(got)
}
