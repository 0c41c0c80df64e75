package server

import "net/http"

const sessionName = "trendhub_session"
const sessionEmailKey = "email"

// cors allows the configured frontend origin with credentials, which the
// cookie-based session requires.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionEmail returns the authenticated user's email, or "" when the
// session carries none.
func (s *Server) sessionEmail(r *http.Request) string {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	email, _ := sess.Values[sessionEmailKey].(string)
	return email
}

func (s *Server) setSessionEmail(w http.ResponseWriter, r *http.Request, email string) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Values[sessionEmailKey] = email
	return sess.Save(r, w)
}

func (s *Server) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	delete(sess.Values, sessionEmailKey)
	return sess.Save(r, w)
}

// requireAuth rejects requests without an authenticated session and passes
// the email through the request context.
func (s *Server) requireAuth(next func(w http.ResponseWriter, r *http.Request, email string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := s.sessionEmail(r)
		if email == "" {
			writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "not authenticated"})
			return
		}
		next(w, r, email)
	}
}
