package football

type matchesResponse struct {
	Matches []apiMatch `json:"matches"`
}

type apiMatch struct {
	UTCDate     string `json:"utcDate"`
	Status      string `json:"status"`
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
	Score struct {
		FullTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fullTime"`
	} `json:"score"`
}
