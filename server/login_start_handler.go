package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nobh/portal-gateway/pkce"
	"github.com/nobh/portal-gateway/server/loginattempt"
	"github.com/rs/zerolog/log"
)

// LoginStartHandler begins a login attempt: it generates the PKCE pair,
// stores the verifier server-side under a fresh attempt id, and redirects
// the browser to the provider's authorize endpoint. The attempt cookie is
// set on this same redirect response; a later response would be too late.
func (s *Server) LoginStartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnPath := SanitizeReturnPath(r.URL.Query().Get(ReturnToParam))

		verifier, challenge, err := pkce.Generate()
		if err != nil {
			log.Err(err).Msg("PKCE generation failed")
			writeJSONError(w, "server_error", "could not start login", http.StatusInternalServerError)
			return
		}

		attemptID := uuid.NewString()
		now := time.Now()
		attempt := &loginattempt.Attempt{
			Verifier:   verifier,
			ReturnPath: returnPath,
			CreatedAt:  now,
			ExpiresAt:  now.Add(loginattempt.DefaultTTL),
		}
		if err := s.attempts.Upsert(attemptID, attempt); err != nil {
			log.Err(err).Msg("failed to store login attempt")
			writeJSONError(w, "server_error", "could not start login", http.StatusInternalServerError)
			return
		}

		s.setLoginAttemptCookie(w, attemptID)
		http.Redirect(w, r, s.provider.AuthCodeURL(attemptID, challenge), http.StatusFound)
	}
}
