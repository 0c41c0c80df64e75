package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"trendhub/internal/domain"
)

type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Insert adds a favorite and reports whether a row was written; false means
// the (user_email, url) pair already exists.
func (s *FavoriteStore) Insert(ctx context.Context, fav *domain.Favorite) (int64, bool, error) {
	query := `
		INSERT INTO favorites (user_email, title, url, category, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_email, url) DO NOTHING
		RETURNING id`

	var id int64
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		fav.UserEmail,
		fav.Title,
		fav.URL,
		fav.Category,
		fav.Source,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (s *FavoriteStore) ListByUser(ctx context.Context, email string) ([]domain.Favorite, error) {
	query := `
		SELECT id, user_email, title, url, category, source, added_at
		FROM favorites
		WHERE user_email = $1
		ORDER BY added_at DESC`

	var favs []domain.Favorite
	err := sqlx.SelectContext(ctx, getExecutor(ctx, s.db), &favs, query, email)
	return favs, err
}

// Delete removes the favorite only when it belongs to the given user and
// reports whether a row went away.
func (s *FavoriteStore) Delete(ctx context.Context, id int64, email string) (bool, error) {
	query := `DELETE FROM favorites WHERE id = $1 AND user_email = $2`

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
