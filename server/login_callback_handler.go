package server

import (
	"errors"
	"net/http"

	apperrors "github.com/nobh/portal-gateway/internal/errors"
	"github.com/nobh/portal-gateway/provider"
	"github.com/rs/zerolog/log"
)

// LoginCallbackHandler completes a login attempt. The provider echoes the
// state parameter (our attempt id); the attempt cookie must present the
// same id, and taking the attempt consumes it, so neither a replayed
// callback nor a reloaded page can redeem a verifier twice.
func (s *Server) LoginCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// The provider reported a denied or failed authorization
		if errorParam != "" {
			s.clearLoginAttemptCookie(w)
			writeJSONError(w, errorParam, errorDesc, http.StatusBadRequest)
			return
		}

		if code == "" || state == "" {
			writeJSONError(w, "invalid_request", "missing code or state parameter", http.StatusBadRequest)
			return
		}

		// The state parameter is authoritative; the cookie proves the
		// callback arrived in the browser that started the attempt.
		cookie, err := r.Cookie(LoginAttemptCookie)
		if err != nil || cookie.Value != state {
			writeJSONError(w, "missing_verifier", "login attempt not recognised, restart login", http.StatusBadRequest)
			return
		}

		attempt, err := s.attempts.Take(state)
		if err != nil {
			s.clearLoginAttemptCookie(w)
			writeJSONError(w, "missing_verifier", "login attempt expired or already used, restart login", http.StatusBadRequest)
			return
		}

		tokenSet, err := s.provider.Exchange(r.Context(), code, attempt.Verifier)
		if err != nil {
			s.clearLoginAttemptCookie(w)
			s.respondExchangeError(w, err)
			return
		}

		s.writeSessionCookies(w, tokenSet)
		s.clearLoginAttemptCookie(w)
		http.Redirect(w, r, attempt.ReturnPath, http.StatusFound)
	}
}

func (s *Server) respondExchangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProviderUnavailable):
		log.Err(err).Msg("token exchange: provider unreachable")
		writeJSONError(w, "provider_unavailable", "identity provider did not respond", http.StatusBadGateway)
	case errors.Is(err, apperrors.ErrMissingVerifier):
		writeJSONError(w, "missing_verifier", "restart login", http.StatusBadRequest)
	default:
		status := http.StatusBadRequest
		var perr *provider.Error
		if errors.As(err, &perr) && perr.StatusCode == http.StatusUnauthorized {
			status = http.StatusUnauthorized
		}
		log.Err(err).Msg("token exchange rejected")
		writeJSONError(w, "token_exchange_failed", err.Error(), status)
	}
}
