package github

type searchResponse struct {
	Items []repo `json:"items"`
}

type repo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
}
