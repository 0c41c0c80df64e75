package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"trendhub/internal/domain"
)

const minPasswordLen = 6

var (
	// ErrInvalid wraps validation failures; the message is user-visible.
	ErrInvalid = errors.New("invalid input")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadCredentials covers unknown email and wrong password alike.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned for rows the caller does not own.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateFavorite is returned when a (user, url) pair already exists.
	ErrDuplicateFavorite = errors.New("already in favorites")
)

// AccountService owns credential auth, favorites, and history. The publisher
// is optional: when nil, activity events are simply not emitted.
type AccountService struct {
	users     UserStore
	favorites FavoriteStore
	history   HistoryStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger

	historyReadLimit int
	now              func() time.Time
}

func NewAccountService(
	users UserStore,
	favorites FavoriteStore,
	history HistoryStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	historyReadLimit int,
) *AccountService {
	return &AccountService{
		users:            users,
		favorites:        favorites,
		history:          history,
		txManager:        txManager,
		publisher:        publisher,
		logger:           logger,
		historyReadLimit: historyReadLimit,
		now:              time.Now,
	}
}

func (s *AccountService) Register(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalid)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := s.users.Create(txCtx, &domain.User{
			Email:        email,
			PasswordHash: &hashStr,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if !inserted {
			return ErrEmailTaken
		}
		return nil
	})
}

func (s *AccountService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil || user.PasswordHash == nil {
		return ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

func (s *AccountService) ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return fmt.Errorf("%w: password confirmation does not match", ErrInvalid)
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, minPasswordLen)
	}

	if err := s.Login(ctx, email, current); err != nil {
		return err
	}

	return s.setPassword(ctx, email, newPassword)
}

func (s *AccountService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, minPasswordLen)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}

	return s.setPassword(ctx, email, newPassword)
}

func (s *AccountService) setPassword(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// EnsureOAuthUser creates the user row for an identity-provider login if it
// does not exist yet. Idempotent.
func (s *AccountService) EnsureOAuthUser(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: identity provider returned no email", ErrInvalid)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user != nil {
		return nil
	}

	if _, err := s.users.Create(ctx, &domain.User{Email: email}); err != nil {
		return fmt.Errorf("create oauth user: %w", err)
	}
	return nil
}

func (s *AccountService) AddFavorite(ctx context.Context, email, title, url, category, source string) (int64, error) {
	if title == "" || url == "" {
		return 0, fmt.Errorf("%w: title and url are required", ErrInvalid)
	}

	fav := &domain.Favorite{
		UserEmail: email,
		Title:     title,
		URL:       url,
		Category:  category,
		Source:    source,
	}

	id, inserted, err := s.favorites.Insert(ctx, fav)
	if err != nil {
		return 0, fmt.Errorf("insert favorite: %w", err)
	}
	if !inserted {
		return 0, ErrDuplicateFavorite
	}

	s.publish(ctx, domain.ActivityEvent{
		Action:    "favorite_added",
		UserEmail: email,
		Title:     title,
		URL:       url,
		Category:  category,
		Source:    source,
	})

	return id, nil
}

func (s *AccountService) ListFavorites(ctx context.Context, email string) ([]domain.Favorite, error) {
	favs, err := s.favorites.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if favs == nil {
		favs = []domain.Favorite{}
	}
	return favs, nil
}

func (s *AccountService) DeleteFavorite(ctx context.Context, email string, id int64) error {
	deleted, err := s.favorites.Delete(ctx, id, email)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *AccountService) AddHistory(ctx context.Context, email, title, url, category, source string) (int64, error) {
	if title == "" || url == "" {
		return 0, fmt.Errorf("%w: title and url are required", ErrInvalid)
	}

	entry := &domain.HistoryEntry{
		UserEmail: email,
		Title:     title,
		URL:       url,
		Category:  category,
		Source:    source,
	}

	id, err := s.history.Insert(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}

	s.publish(ctx, domain.ActivityEvent{
		Action:    "visit_recorded",
		UserEmail: email,
		Title:     title,
		URL:       url,
		Category:  category,
		Source:    source,
	})

	return id, nil
}

func (s *AccountService) ListHistory(ctx context.Context, email string) ([]domain.HistoryEntry, error) {
	entries, err := s.history.ListByUser(ctx, email, s.historyReadLimit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, nil
}

func (s *AccountService) DeleteHistory(ctx context.Context, email string, id int64) error {
	deleted, err := s.history.Delete(ctx, id, email)
	if err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *AccountService) ClearHistory(ctx context.Context, email string) error {
	if err := s.history.ClearByUser(ctx, email); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// PruneHistory deletes visits older than the retention cutoff. Driven by the
// scheduler, not by any HTTP route.
func (s *AccountService) PruneHistory(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention)
	n, err := s.history.PruneOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	if n > 0 {
		s.logger.Info("pruned history", "rows", n, "cutoff", cutoff)
	}
	return n, nil
}

// GlobalTrendCounts returns the trailing week's visit counts grouped by day
// and category across all users.
func (s *AccountService) GlobalTrendCounts(ctx context.Context) ([]domain.TrendCount, error) {
	since := s.now().AddDate(0, 0, -7)
	counts, err := s.history.CountByDayAndCategory(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count trends: %w", err)
	}
	if counts == nil {
		counts = []domain.TrendCount{}
	}
	return counts, nil
}

// publish emits an activity event on a best-effort basis. A broker outage
// must never fail the user's request.
func (s *AccountService) publish(ctx context.Context, event domain.ActivityEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish activity event failed", "action", event.Action, "error", err)
	}
}
