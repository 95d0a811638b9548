// Package identity performs strict ID token verification against the
// provider's published signing keys, and an explicitly-unverified claim
// decode for callers that only need advisory identity hints.
package identity

import (
	"context"
	stderrors "errors"
	"slices"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/nobh/portal-gateway/internal/errors"
)

// Verifier validates an ID token's signature, expiry, issuer and audience.
// Signing keys are fetched from the provider's JWKS endpoint and cached
// with rotation handled by the keyset.
type Verifier struct {
	idVerifier *oidc.IDTokenVerifier
	issuer     string
	clientID   string
}

// NewVerifier builds a Verifier backed by a remote JWKS. ctx governs the
// lifetime of the key cache, not a single request.
func NewVerifier(ctx context.Context, issuer, jwksURL, clientID string) *Verifier {
	return NewVerifierWithKeySet(issuer, clientID, oidc.NewRemoteKeySet(ctx, jwksURL))
}

// NewVerifierWithKeySet is NewVerifier with an explicit keyset, used by
// tests with static keys.
func NewVerifierWithKeySet(issuer, clientID string, keySet oidc.KeySet) *Verifier {
	return &Verifier{
		idVerifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID}),
		issuer:     issuer,
		clientID:   clientID,
	}
}

// Verify returns trusted claims, or one of ErrMalformedToken,
// ErrIssuerMismatch, ErrAudienceMismatch, ErrTokenExpired, ErrBadSignature.
// Only ErrTokenExpired is worth a silent refresh; the rest are hard rejects.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*Claims, error) {
	iss, aud, err := unverifiedIssAud(rawIDToken)
	if err != nil {
		return nil, err
	}
	if iss != v.issuer {
		return nil, errors.Wrapf(errors.ErrIssuerMismatch, "token issuer %q, expected %q", iss, v.issuer)
	}
	if !slices.Contains(aud, v.clientID) {
		return nil, errors.Wrapf(errors.ErrAudienceMismatch, "token audience %v", aud)
	}

	idToken, err := v.idVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		var expired *oidc.TokenExpiredError
		if stderrors.As(err, &expired) {
			return nil, errors.Wrapf(errors.ErrTokenExpired, "expired at %s", expired.Expiry)
		}
		return nil, errors.Wrapf(errors.ErrBadSignature, "%v", err)
	}

	var c Claims
	if err := idToken.Claims(&c); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedToken, "decoding claims: %v", err)
	}
	if c.Sub == "" {
		c.Sub = idToken.Subject
	}
	return &c, nil
}
