package domain

import "time"

type User struct {
	Email        string    `db:"email"`
	PasswordHash *string   `db:"password_hash"` // nil for OAuth-only accounts
	CreatedAt    time.Time `db:"created_at"`
}

type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	UserEmail string    `db:"user_email" json:"-"`
	Title     string    `db:"title" json:"title"`
	URL       string    `db:"url" json:"url"`
	Category  string    `db:"category" json:"category"`
	Source    string    `db:"source" json:"source"`
	AddedAt   time.Time `db:"added_at" json:"added_at"`
}

type HistoryEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserEmail string    `db:"user_email" json:"-"`
	Title     string    `db:"title" json:"title"`
	URL       string    `db:"url" json:"url"`
	Category  string    `db:"category" json:"category"`
	Source    string    `db:"source" json:"source"`
	VisitedAt time.Time `db:"visited_at" json:"visited_at"`
}

// TrendCount is one bucket of the 7-day visit histogram, grouped by day and
// category across all users.
type TrendCount struct {
	Day      string `db:"day" json:"day"`
	Category string `db:"category" json:"category"`
	Visits   int64  `db:"visits" json:"visits"`
}
