package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"trendhub/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user and reports whether a row was actually written;
// false means the email already exists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (bool, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING`

	res, err := getExecutor(ctx, s.db).ExecContext(ctx, query, user.Email, user.PasswordHash)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByEmail returns nil without error when the user does not exist.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT email, password_hash, created_at
		FROM users
		WHERE email = $1`

	err := sqlx.GetContext(ctx, getExecutor(ctx, s.db), &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE email = $1`

	_, err := getExecutor(ctx, s.db).ExecContext(ctx, query, email, passwordHash)
	return err
}
