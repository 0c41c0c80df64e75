package domain

// TrendItem is the normalized record every upstream is mapped into. Only
// title and url are guaranteed; the remaining fields are populated per
// source and omitted from the JSON output when empty.
type TrendItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author,omitempty"`
	Category    string `json:"category,omitempty"`
	Source      string `json:"source,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
	Subreddit   string `json:"subreddit,omitempty"`
	Description string `json:"description,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Stars       int    `json:"stars,omitempty"`
	Watchers    int    `json:"watchers,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	Channel     string `json:"channel,omitempty"`
	Views       int64  `json:"views,omitempty"`
}

// Match is one football result. Score is rendered "home-away" and defaults
// to "0-0" when the upstream has no full-time score yet.
type Match struct {
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	Competition string `json:"competition"`
	Date        string `json:"date"`
	Score       string `json:"score"`
	Status      string `json:"status"`
	Category    string `json:"category"`
}
