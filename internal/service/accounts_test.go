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
	"golang.org/x/crypto/bcrypt"

	"trendhub/internal/domain"
	"trendhub/internal/service/mocks"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	users     *mocks.MockUserStore
	favorites *mocks.MockFavoriteStore
	history   *mocks.MockHistoryStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *AccountService
	logger  *slog.Logger
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.users = mocks.NewMockUserStore(s.ctrl)
	s.favorites = mocks.NewMockFavoriteStore(s.ctrl)
	s.history = mocks.NewMockHistoryStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewAccountService(
		s.users,
		s.favorites,
		s.history,
		s.txManager,
		s.publisher,
		s.logger,
		100,
	)
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func hashOf(password string) *string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	str := string(hash)
	return &str
}

func (s *AccountServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (bool, error) {
			s.Equal("user@example.com", user.Email)
			s.NotNil(user.PasswordHash)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("secret1")))
			return true, nil
		},
	)

	s.NoError(s.service.Register(ctx, "  User@Example.COM ", "secret1"))
}

func (s *AccountServiceTestSuite) TestRegister_InvalidEmail() {
	err := s.service.Register(context.Background(), "not-an-email", "secret1")
	s.ErrorIs(err, ErrInvalid)
}

func (s *AccountServiceTestSuite) TestRegister_ShortPassword() {
	err := s.service.Register(context.Background(), "user@example.com", "abc")
	s.ErrorIs(err, ErrInvalid)
}

func (s *AccountServiceTestSuite) TestRegister_EmailTaken() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.users.EXPECT().Create(ctx, gomock.Any()).Return(false, nil)

	err := s.service.Register(ctx, "user@example.com", "secret1")
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AccountServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: hashOf("secret1"),
	}, nil)

	s.NoError(s.service.Login(ctx, "User@Example.com", "secret1"))
}

func (s *AccountServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)

	err := s.service.Login(ctx, "nobody@example.com", "secret1")
	s.ErrorIs(err, ErrBadCredentials)
}

func (s *AccountServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: hashOf("secret1"),
	}, nil)

	err := s.service.Login(ctx, "user@example.com", "wrong")
	s.ErrorIs(err, ErrBadCredentials)
}

func (s *AccountServiceTestSuite) TestLogin_OAuthOnlyAccount() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(&domain.User{
		Email: "user@example.com",
	}, nil)

	err := s.service.Login(ctx, "user@example.com", "anything")
	s.ErrorIs(err, ErrBadCredentials)
}

func (s *AccountServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: hashOf("oldpass"),
	}, nil)
	s.users.EXPECT().UpdatePassword(ctx, "user@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, hash string) error {
			s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
			return nil
		},
	)

	s.NoError(s.service.ChangePassword(ctx, "user@example.com", "oldpass", "newpass", "newpass"))
}

func (s *AccountServiceTestSuite) TestChangePassword_ConfirmMismatch() {
	err := s.service.ChangePassword(context.Background(), "user@example.com", "oldpass", "newpass", "other")
	s.ErrorIs(err, ErrInvalid)
}

func (s *AccountServiceTestSuite) TestChangePassword_WrongCurrent() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "user@example.com").Return(&domain.User{
		Email:        "user@example.com",
		PasswordHash: hashOf("oldpass"),
	}, nil)

	err := s.service.ChangePassword(ctx, "user@example.com", "wrong", "newpass", "newpass")
	s.ErrorIs(err, ErrBadCredentials)
}

func (s *AccountServiceTestSuite) TestResetPassword_UnknownEmail() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)

	err := s.service.ResetPassword(ctx, "nobody@example.com", "newpass")
	s.ErrorIs(err, ErrNotFound)
}

func (s *AccountServiceTestSuite) TestEnsureOAuthUser_CreatesMissing() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "oauth@example.com").Return(nil, nil)
	s.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (bool, error) {
			s.Equal("oauth@example.com", user.Email)
			s.Nil(user.PasswordHash)
			return true, nil
		},
	)

	s.NoError(s.service.EnsureOAuthUser(ctx, "OAuth@Example.com"))
}

func (s *AccountServiceTestSuite) TestEnsureOAuthUser_AlreadyExists() {
	ctx := context.Background()

	s.users.EXPECT().GetByEmail(ctx, "oauth@example.com").Return(&domain.User{Email: "oauth@example.com"}, nil)

	s.NoError(s.service.EnsureOAuthUser(ctx, "oauth@example.com"))
}

func (s *AccountServiceTestSuite) TestAddFavorite_Success() {
	ctx := context.Background()

	s.favorites.EXPECT().Insert(ctx, gomock.Any()).Return(int64(7), true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.ActivityEvent) error {
			s.Equal("favorite_added", event.Action)
			s.Equal("user@example.com", event.UserEmail)
			s.Equal("Title", event.Title)
			return nil
		},
	)

	id, err := s.service.AddFavorite(ctx, "user@example.com", "Title", "https://x", "tech_news", "Hacker News")

	s.NoError(err)
	s.Equal(int64(7), id)
}

func (s *AccountServiceTestSuite) TestAddFavorite_MissingFields() {
	_, err := s.service.AddFavorite(context.Background(), "user@example.com", "", "https://x", "", "")
	s.ErrorIs(err, ErrInvalid)
}

func (s *AccountServiceTestSuite) TestAddFavorite_Duplicate() {
	ctx := context.Background()

	s.favorites.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), false, nil)

	_, err := s.service.AddFavorite(ctx, "user@example.com", "Title", "https://x", "", "")
	s.ErrorIs(err, ErrDuplicateFavorite)
}

func (s *AccountServiceTestSuite) TestAddFavorite_PublisherFailureIgnored() {
	ctx := context.Background()

	s.favorites.EXPECT().Insert(ctx, gomock.Any()).Return(int64(7), true, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

	id, err := s.service.AddFavorite(ctx, "user@example.com", "Title", "https://x", "", "")

	s.NoError(err)
	s.Equal(int64(7), id)
}

func (s *AccountServiceTestSuite) TestAddFavorite_PublisherNil() {
	ctx := context.Background()

	service := NewAccountService(s.users, s.favorites, s.history, s.txManager, nil, s.logger, 100)

	s.favorites.EXPECT().Insert(ctx, gomock.Any()).Return(int64(7), true, nil)

	id, err := service.AddFavorite(ctx, "user@example.com", "Title", "https://x", "", "")

	s.NoError(err)
	s.Equal(int64(7), id)
}

func (s *AccountServiceTestSuite) TestListFavorites_NilBecomesEmpty() {
	ctx := context.Background()

	s.favorites.EXPECT().ListByUser(ctx, "user@example.com").Return(nil, nil)

	favs, err := s.service.ListFavorites(ctx, "user@example.com")

	s.NoError(err)
	s.NotNil(favs)
	s.Empty(favs)
}

func (s *AccountServiceTestSuite) TestDeleteFavorite_NotFound() {
	ctx := context.Background()

	s.favorites.EXPECT().Delete(ctx, int64(9), "user@example.com").Return(false, nil)

	err := s.service.DeleteFavorite(ctx, "user@example.com", 9)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AccountServiceTestSuite) TestAddHistory_PublishesVisit() {
	ctx := context.Background()

	s.history.EXPECT().Insert(ctx, gomock.Any()).Return(int64(3), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.ActivityEvent) error {
			s.Equal("visit_recorded", event.Action)
			return nil
		},
	)

	id, err := s.service.AddHistory(ctx, "user@example.com", "Title", "https://x", "world_news", "Reddit WorldNews")

	s.NoError(err)
	s.Equal(int64(3), id)
}

func (s *AccountServiceTestSuite) TestListHistory_UsesReadLimit() {
	ctx := context.Background()

	s.history.EXPECT().ListByUser(ctx, "user@example.com", 100).Return([]domain.HistoryEntry{{ID: 1}}, nil)

	entries, err := s.service.ListHistory(ctx, "user@example.com")

	s.NoError(err)
	s.Len(entries, 1)
}

func (s *AccountServiceTestSuite) TestDeleteHistory_NotFound() {
	ctx := context.Background()

	s.history.EXPECT().Delete(ctx, int64(4), "user@example.com").Return(false, nil)

	err := s.service.DeleteHistory(ctx, "user@example.com", 4)
	s.ErrorIs(err, ErrNotFound)
}

func (s *AccountServiceTestSuite) TestPruneHistory_UsesRetentionCutoff() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return now }

	s.history.EXPECT().PruneOlderThan(ctx, now.Add(-90*24*time.Hour)).Return(int64(12), nil)

	n, err := s.service.PruneHistory(ctx, 90*24*time.Hour)

	s.NoError(err)
	s.Equal(int64(12), n)
}

func (s *AccountServiceTestSuite) TestGlobalTrendCounts_TrailingWeek() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return now }

	s.history.EXPECT().CountByDayAndCategory(ctx, now.AddDate(0, 0, -7)).Return(nil, nil)

	counts, err := s.service.GlobalTrendCounts(ctx)

	s.NoError(err)
	s.NotNil(counts)
	s.Empty(counts)
}
