package server

import "net/http"

// Trend handlers return bare JSON arrays. Upstream failures are absorbed in
// the service layer, so these always answer 200 with whatever was collected.

func (s *Server) handleReddit(w http.ResponseWriter, r *http.Request) {
	items, _ := s.trends.RedditHot(r.Context())
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGitHub(w http.ResponseWriter, r *http.Request) {
	items, _ := s.trends.GitHubTrending(r.Context())
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.trends.GlobalNews(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.PathValue("keyword")
	writeJSON(w, http.StatusOK, s.trends.Search(r.Context(), keyword))
}

func (s *Server) handleSports(w http.ResponseWriter, r *http.Request) {
	matches, _ := s.trends.Sports(r.Context())
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleYouTube(w http.ResponseWriter, r *http.Request) {
	country := r.PathValue("country")
	if country == "" {
		country = "United States"
	}
	items, _ := s.trends.YouTubeTrending(r.Context(), country)
	writeJSON(w, http.StatusOK, items)
}
