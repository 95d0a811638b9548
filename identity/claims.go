package identity

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/nobh/portal-gateway/internal/errors"
)

// Claims are the identity claims the portal cares about from an ID token.
// Group membership arrives under the provider's namespaced claim.
type Claims struct {
	Sub    string   `json:"sub"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Groups []string `json:"cognito:groups"`
}

// DecodeUnverified extracts claims without checking the signature. The
// result is advisory only and must never drive an authorization decision;
// use Verifier.Verify for trusted claims.
func DecodeUnverified(raw string) (*Claims, error) {
	tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedToken, "%v", err)
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrMalformedToken
	}

	c := &Claims{}
	c.Sub, _ = mc.GetSubject()
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if v, ok := mc["name"].(string); ok {
		c.Name = v
	}
	if groups, ok := mc["cognito:groups"].([]any); ok {
		for _, g := range groups {
			if s, ok := g.(string); ok {
				c.Groups = append(c.Groups, s)
			}
		}
	}
	return c, nil
}

// unverifiedIssAud reads issuer and audience before any cryptographic
// check, so mismatches can be reported as their own error kinds.
func unverifiedIssAud(raw string) (string, []string, error) {
	tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrMalformedToken, "%v", err)
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, errors.ErrMalformedToken
	}
	iss, _ := mc.GetIssuer()
	aud, _ := mc.GetAudience()
	return iss, aud, nil
}
