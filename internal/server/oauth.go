package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"trendhub/internal/config"
)

const sessionStateKey = "oauth_state"

// oauthProvider pairs an oauth2 config with the provider-specific way of
// asking who the user is.
type oauthProvider struct {
	config     *oauth2.Config
	fetchEmail func(ctx context.Context, client *http.Client) (string, error)
}

type oauthProviders struct {
	providers map[string]*oauthProvider
}

func newOAuthProviders(cfg config.OAuthConfig) *oauthProviders {
	p := &oauthProviders{providers: make(map[string]*oauthProvider)}

	if cfg.Google.Enabled() {
		p.providers["google"] = &oauthProvider{
			config: &oauth2.Config{
				ClientID:     cfg.Google.ClientID,
				ClientSecret: cfg.Google.ClientSecret,
				RedirectURL:  cfg.Google.RedirectURL,
				Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
				Endpoint:     google.Endpoint,
			},
			fetchEmail: fetchGoogleEmail,
		}
	}

	if cfg.GitHub.Enabled() {
		p.providers["github"] = &oauthProvider{
			config: &oauth2.Config{
				ClientID:     cfg.GitHub.ClientID,
				ClientSecret: cfg.GitHub.ClientSecret,
				RedirectURL:  cfg.GitHub.RedirectURL,
				Scopes:       []string{"user:email"},
				Endpoint:     githuboauth.Endpoint,
			},
			fetchEmail: fetchGitHubEmail,
		}
	}

	return p
}

func (p *oauthProviders) get(name string) *oauthProvider {
	return p.providers[name]
}

func (s *Server) handleOAuthLogin(w http.ResponseWriter, r *http.Request) {
	provider := s.oauth.get(r.PathValue("provider"))
	if provider == nil {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "unknown provider"})
		return
	}

	state, err := randomState()
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess, _ := s.store.Get(r, sessionName)
	sess.Values[sessionStateKey] = state
	if err := sess.Save(r, w); err != nil {
		s.writeError(w, err)
		return
	}

	http.Redirect(w, r, provider.config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	provider := s.oauth.get(r.PathValue("provider"))
	if provider == nil {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "unknown provider"})
		return
	}

	sess, _ := s.store.Get(r, sessionName)
	wantState, _ := sess.Values[sessionStateKey].(string)
	delete(sess.Values, sessionStateKey)

	if wantState == "" || r.URL.Query().Get("state") != wantState {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "state mismatch"})
		return
	}

	token, err := provider.config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.logger.Warn("oauth exchange failed", "error", err)
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "authorization failed"})
		return
	}

	email, err := provider.fetchEmail(r.Context(), provider.config.Client(r.Context(), token))
	if err != nil {
		s.logger.Warn("oauth email lookup failed", "error", err)
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "could not read account email"})
		return
	}

	if err := s.accounts.EnsureOAuthUser(r.Context(), email); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.setSessionEmail(w, r, email); err != nil {
		s.writeError(w, err)
		return
	}

	http.Redirect(w, r, s.frontendURL, http.StatusFound)
}

func fetchGoogleEmail(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo status: %d", resp.StatusCode)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Email, nil
}

func fetchGitHubEmail(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.github.com/user/emails", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("user emails status: %d", resp.StatusCode)
	}

	var emails []struct {
		Email   string `json:"email"`
		Primary bool   `json:"primary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary {
			return e.Email, nil
		}
	}
	if len(emails) > 0 {
		return emails[0].Email, nil
	}
	return "", fmt.Errorf("no email on account")
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
