package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"trendhub/internal/domain"
)

type HistoryStore struct {
	db *sqlx.DB
}

func NewHistoryStore(db *sqlx.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

func (s *HistoryStore) Insert(ctx context.Context, entry *domain.HistoryEntry) (int64, error) {
	query := `
		INSERT INTO history (user_email, title, url, category, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.UserEmail,
		entry.Title,
		entry.URL,
		entry.Category,
		entry.Source,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *HistoryStore) ListByUser(ctx context.Context, email string, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, user_email, title, url, category, source, visited_at
		FROM history
		WHERE user_email = $1
		ORDER BY visited_at DESC
		LIMIT $2`

	var entries []domain.HistoryEntry
	err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &entries, query, email, limit)
	return entries, err
}

func (s *HistoryStore) Delete(ctx context.Context, id int64, email string) (bool, error) {
	query := `DELETE FROM history WHERE id = $1 AND user_email = $2`

	res, err := getExecutor(ctx, s.db).ExecContext(ctx, query, id, email)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *HistoryStore) ClearByUser(ctx context.Context, email string) error {
	_, err := getExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM history WHERE user_email = $1`, email)
	return err
}

func (s *HistoryStore) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := getExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM history WHERE visited_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountByDayAndCategory buckets visits since the given time by calendar day
// and category, across all users.
func (s *HistoryStore) CountByDayAndCategory(ctx context.Context, since time.Time) ([]domain.TrendCount, error) {
	query := `
		SELECT to_char(visited_at, 'YYYY-MM-DD') AS day,
		       category,
		       COUNT(*) AS visits
		FROM history
		WHERE visited_at >= $1
		GROUP BY day, category
		ORDER BY day DESC, visits DESC`

	var counts []domain.TrendCount
	err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &counts, query, since)
	return counts, err
}
