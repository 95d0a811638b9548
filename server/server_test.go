package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/nobh/portal-gateway/internal/config"
	"github.com/nobh/portal-gateway/portal"
	"github.com/nobh/portal-gateway/server"
	"github.com/nobh/portal-gateway/server/loginattempt"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a gateway pointed at the given provider domain,
// configured through the environment the way production is.
func newTestServer(t *testing.T, idpDomain string) *server.Server {
	t.Helper()
	t.Setenv("PROVIDER_DOMAIN", idpDomain)
	t.Setenv("OAUTH_CLIENT_ID", "portal-client")
	t.Setenv("OAUTH_REDIRECT_URI", "http://portal.example.com/login/callback")
	t.Setenv("OAUTH_SIGNOUT_URI", "http://portal.example.com/")

	srv, err := server.New(config.New(), loginattempt.NewInMemoryRepo(), portal.NewSeededStore())
	require.NoError(t, err)
	return srv
}

// fakeIdP fakes the hosted provider's token endpoint: single-use codes,
// recorded verifiers, configurable refresh behavior.
type fakeIdP struct {
	srv *httptest.Server

	mu            sync.Mutex
	usedCodes     map[string]bool
	lastVerifier  string
	refreshStatus int
	rotateRefresh string
}

func newFakeIdP(t *testing.T) *fakeIdP {
	t.Helper()
	idp := &fakeIdP{
		usedCodes:     make(map[string]bool),
		refreshStatus: http.StatusOK,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", idp.tokenEndpoint)
	idp.srv = httptest.NewServer(mux)
	t.Cleanup(idp.srv.Close)
	return idp
}

func (f *fakeIdP) tokenEndpoint(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.FormValue("grant_type") {
	case "authorization_code":
		code := r.FormValue("code")
		if code == "" || f.usedCodes[code] {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		f.usedCodes[code] = true
		f.lastVerifier = r.FormValue("code_verifier")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "header.payload.access",
			"id_token":      "header.payload.id",
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"token_type":    "Bearer",
		})
	case "refresh_token":
		if f.refreshStatus != http.StatusOK {
			w.WriteHeader(f.refreshStatus)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "header.payload.access2",
			"id_token":      "header.payload.id2",
			"refresh_token": f.rotateRefresh,
			"expires_in":    3600,
			"token_type":    "Bearer",
		})
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported_grant_type"})
	}
}

func (f *fakeIdP) verifier() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastVerifier
}

func findCookie(t *testing.T, res *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
