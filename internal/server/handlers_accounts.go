package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"trendhub/internal/service"
)

type credentialsRequest struct {
	// The frontend posts the email under "username".
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type itemRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrInvalid)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.accounts.Register(r.Context(), req.Username, req.Password); err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "account created", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.accounts.Login(r.Context(), req.Username, req.Password); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.setSessionEmail(w, r, req.Username); err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "logged in", nil)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.clearSession(w, r); err != nil {
		s.writeError(w, err)
		return
	}
	writeOK(w, "logged out", nil)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request, email string) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	err := s.accounts.ChangePassword(r.Context(), email, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "password changed", nil)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.accounts.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "password reset", nil)
}

// handleSession reports the session's user, if any. Serves both the session
// probe and the post-OAuth check the frontend performs.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	email := s.sessionEmail(r)
	if email == "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "username": email})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request, email string) {
	favs, err := s.accounts.ListFavorites(r.Context(), email)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeOK(w, "", favs)
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request, email string) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	id, err := s.accounts.AddFavorite(r.Context(), email, req.Title, req.URL, req.Category, req.Source)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "favorite added", "id": id})
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request, email string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid id", service.ErrInvalid))
		return
	}

	if err := s.accounts.DeleteFavorite(r.Context(), email, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "favorite removed", nil)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request, email string) {
	entries, err := s.accounts.ListHistory(r.Context(), email)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeOK(w, "", entries)
}

func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request, email string) {
	var req itemRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	id, err := s.accounts.AddHistory(r.Context(), email, req.Title, req.URL, req.Category, req.Source)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "visit recorded", "id": id})
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request, email string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid id", service.ErrInvalid))
		return
	}

	if err := s.accounts.DeleteHistory(r.Context(), email, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeOK(w, "history entry removed", nil)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request, email string) {
	if err := s.accounts.ClearHistory(r.Context(), email); err != nil {
		s.writeError(w, err)
		return
	}
	writeOK(w, "history cleared", nil)
}

func (s *Server) handleGlobalTrends(w http.ResponseWriter, r *http.Request) {
	counts, err := s.accounts.GlobalTrendCounts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeOK(w, "", counts)
}
