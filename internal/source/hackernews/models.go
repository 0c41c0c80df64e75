package hackernews

type item struct {
	ID    int64  `json:"id"`
	By    string `json:"by"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
