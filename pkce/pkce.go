// Package pkce implements Proof Key for Code Exchange (RFC 7636) for the
// authorization-code flow: a random code verifier and its S256 challenge.
package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/nobh/portal-gateway/internal/errors"
)

// VerifierBytes is the entropy of a generated verifier. 32 bytes encodes to
// 43 base64url characters, the RFC 7636 minimum verifier length.
const VerifierBytes = 32

// Generate returns a new code verifier and its S256 challenge, both
// base64url encoded without padding. An entropy-source failure is returned
// as an error; a login flow must not proceed without it.
func Generate() (verifier, challenge string, err error) {
	b := make([]byte, VerifierBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", errors.Wrapf(err, "reading random bytes for code verifier")
	}
	verifier = base64.RawURLEncoding.EncodeToString(b)
	return verifier, Challenge(verifier), nil
}

// Challenge derives the S256 code challenge for a verifier
func Challenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
