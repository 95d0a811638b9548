package server

import (
	"errors"
	"net/http"

	"github.com/nobh/portal-gateway/identity"
	apperrors "github.com/nobh/portal-gateway/internal/errors"
	"github.com/rs/zerolog/log"
)

// SessionRefreshHandler silently renews access/ID tokens from the refresh
// cookie. Concurrent calls coalesce into one provider request; a rejected
// refresh tears the whole session down so the caller re-authenticates
// instead of looping.
func (s *Server) SessionRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(RefreshTokenCookie)
		if err != nil || cookie.Value == "" {
			writeJSONError(w, "no_refresh_token", "no refresh token cookie present", http.StatusUnauthorized)
			return
		}

		tokenSet, err := s.refresher.Refresh(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, apperrors.ErrProviderUnavailable) {
				// Transient: keep the session cookies, the caller may retry
				log.Err(err).Msg("refresh: provider unreachable")
				writeJSONError(w, "provider_unavailable", "identity provider did not respond", http.StatusBadGateway)
				return
			}
			s.clearSessionCookies(w)
			writeJSONError(w, "refresh_failed", "session expired, sign in again", http.StatusUnauthorized)
			return
		}

		s.writeSessionCookies(w, tokenSet)
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// SessionLogoutHandler clears all session cookies and sends the browser to
// the provider's logout endpoint when a sign-out URI is configured,
// otherwise back to the landing page.
func (s *Server) SessionLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.clearSessionCookies(w)
		s.clearLoginAttemptCookie(w)

		target := s.provider.LogoutURL()
		if target == "" {
			target = DefaultLandingPath
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}

type whoamiResponse struct {
	Sub      string   `json:"sub"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Groups   []string `json:"groups"`
	Verified bool     `json:"verified"`
}

// SessionWhoamiHandler returns the caller's identity claims. With an issuer
// configured the ID token is fully verified; expired tokens are reported
// distinctly so the client can refresh and retry. Without an issuer the
// claims are decoded unverified and flagged as such.
func (s *Server) SessionWhoamiHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(IDTokenCookie)
		if err != nil || cookie.Value == "" {
			writeJSONError(w, "unauthorized", "no session", http.StatusUnauthorized)
			return
		}

		if s.verifier == nil {
			claims, err := identity.DecodeUnverified(cookie.Value)
			if err != nil {
				writeJSONError(w, "invalid_token", "session token unreadable", http.StatusUnauthorized)
				return
			}
			writeJSON(w, http.StatusOK, claimsResponse(claims, false))
			return
		}

		claims, err := s.verifier.Verify(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				writeJSONError(w, "token_expired", "session token expired, refresh and retry", http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("whoami: ID token rejected")
			writeJSONError(w, "invalid_token", "session token rejected", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, claimsResponse(claims, true))
	}
}

func claimsResponse(claims *identity.Claims, verified bool) whoamiResponse {
	groups := claims.Groups
	if groups == nil {
		groups = []string{}
	}
	return whoamiResponse{
		Sub:      claims.Sub,
		Email:    claims.Email,
		Name:     claims.Name,
		Groups:   groups,
		Verified: verified,
	}
}
