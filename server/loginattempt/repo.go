package loginattempt

import (
	"errors"
	"time"
)

// DefaultTTL bounds how long a login attempt may sit between the start
// redirect and the provider callback.
const DefaultTTL = 10 * time.Minute

// ErrNotFound is returned when an attempt does not exist, has expired, or
// was already consumed.
var ErrNotFound = errors.New("login attempt not found")

// Attempt is the server-side half of one in-flight login: the PKCE verifier
// and the path the user was originally trying to reach. The attempt id is
// round-tripped through the OAuth2 state parameter and a transport cookie.
type Attempt struct {
	Verifier   string
	ReturnPath string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

type Repo interface {
	Upsert(id string, attempt *Attempt) error
	// Take retrieves and deletes an attempt. A second Take with the same id
	// returns ErrNotFound, so a verifier can never be replayed.
	Take(id string) (*Attempt, error)
	Delete(id string) error
}
