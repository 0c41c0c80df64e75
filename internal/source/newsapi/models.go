package newsapi

type articlesResponse struct {
	Status   string    `json:"status"`
	Articles []article `json:"articles"`
}

type article struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
}
