package domain

import "time"

// ActivityEvent is published to the broker when a user favorites an item or
// records a visit. Consumers (analytics, recommendations) are external.
type ActivityEvent struct {
	Action    string    `json:"action"` // "favorite_added" or "visit_recorded"
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
