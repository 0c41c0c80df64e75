package reddit

// listing is the subset of a Reddit listing response we read.
type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Permalink   string `json:"permalink"`
	Subreddit   string `json:"subreddit"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
}
