package server

import (
	"net/http"

	"github.com/nobh/portal-gateway/provider"
	"github.com/nobh/portal-gateway/server/loginattempt"
)

// Session cookie names. Each logical cookie has exactly one name, shared by
// every endpoint that reads or writes it.
const (
	// AccessTokenCookie and IDTokenCookie grant access and are HttpOnly
	AccessTokenCookie = "access_token"
	IDTokenCookie     = "id_token"
	// RefreshTokenCookie outlives the access token by days
	RefreshTokenCookie = "refresh_token"
	// LoggedInCookie is the only script-readable cookie; it carries no
	// secret, just a hint for the UI
	LoggedInCookie = "logged_in"
	// LoginAttemptCookie transports the attempt id across the provider
	// round trip. Lax, not Strict: the cookie must accompany the top-level
	// GET navigation back from the provider.
	LoginAttemptCookie = "login_attempt"
)

const (
	// refreshTokenMaxAge keeps the refresh cookie for a week
	refreshTokenMaxAge = 7 * 24 * 60 * 60
	// minSessionMaxAge floors short provider expiries so the redirect after
	// login still carries a live cookie
	minSessionMaxAge = 60
)

func (s *Server) setCookie(w http.ResponseWriter, name, value string, httpOnly bool, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   s.config.GetSecureCookies(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// writeSessionCookies persists a token set. The refresh cookie is only
// touched when the provider rotated it, so an unrotated token keeps its
// original cookie.
func (s *Server) writeSessionCookies(w http.ResponseWriter, ts *provider.TokenSet) {
	maxAge := ts.ExpiresIn
	if maxAge < minSessionMaxAge {
		maxAge = minSessionMaxAge
	}

	s.setCookie(w, AccessTokenCookie, ts.AccessToken, true, maxAge)
	s.setCookie(w, IDTokenCookie, ts.IDToken, true, maxAge)
	if ts.RefreshToken != "" {
		s.setCookie(w, RefreshTokenCookie, ts.RefreshToken, true, refreshTokenMaxAge)
	}
	s.setCookie(w, LoggedInCookie, "true", false, maxAge)
}

// clearSessionCookies expires every session cookie, used by logout and by
// a rejected refresh
func (s *Server) clearSessionCookies(w http.ResponseWriter) {
	s.setCookie(w, AccessTokenCookie, "", true, -1)
	s.setCookie(w, IDTokenCookie, "", true, -1)
	s.setCookie(w, RefreshTokenCookie, "", true, -1)
	s.setCookie(w, LoggedInCookie, "", false, -1)
}

func (s *Server) setLoginAttemptCookie(w http.ResponseWriter, attemptID string) {
	s.setCookie(w, LoginAttemptCookie, attemptID, true, int(loginattempt.DefaultTTL.Seconds()))
}

func (s *Server) clearLoginAttemptCookie(w http.ResponseWriter) {
	s.setCookie(w, LoginAttemptCookie, "", true, -1)
}
