package youtube

type videosResponse struct {
	Items []video `json:"items"`
}

type video struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}
