package config

import (
	"strings"

	"github.com/nobh/portal-gateway/internal/errors"
)

const (
	providerDomainVar = "PROVIDER_DOMAIN"
	providerIssuerVar = "PROVIDER_ISSUER"
	providerJWKSVar   = "PROVIDER_JWKS_URL"
	clientIDVar       = "OAUTH_CLIENT_ID"
	clientSecretVar   = "OAUTH_CLIENT_SECRET"
	redirectURIVar    = "OAUTH_REDIRECT_URI"
	signOutURIVar     = "OAUTH_SIGNOUT_URI"
	scopesVar         = "OAUTH_SCOPES"

	defaultScopes = "openid email profile"
)

// Provider reads identity-provider settings from the environment.
// The provider domain hosts /oauth2/authorize, /oauth2/token and /logout;
// the issuer and JWKS URL are only needed for strict ID token verification.
type Provider struct{}

var _ ProviderConfig = Provider{}

// GetProviderDomain returns the hosted auth domain, without a trailing slash
func (Provider) GetProviderDomain() string {
	return strings.TrimSuffix(GetEnv(providerDomainVar, ""), "/")
}

func (Provider) GetIssuer() string {
	return strings.TrimSuffix(GetEnv(providerIssuerVar, ""), "/")
}

// GetJWKSURL returns the JWKS endpoint, derived from the issuer unless
// overridden explicitly
func (p Provider) GetJWKSURL() string {
	if url := GetEnv(providerJWKSVar, ""); url != "" {
		return url
	}
	issuer := p.GetIssuer()
	if issuer == "" {
		return ""
	}
	return issuer + "/.well-known/jwks.json"
}

func (Provider) GetClientID() string {
	return GetEnv(clientIDVar, "")
}

func (Provider) GetClientSecret() string {
	return GetEnv(clientSecretVar, "")
}

func (Provider) GetRedirectURI() string {
	return GetEnv(redirectURIVar, "")
}

func (Provider) GetSignOutURI() string {
	return GetEnv(signOutURIVar, "")
}

func (Provider) GetScopes() []string {
	return strings.Fields(GetEnv(scopesVar, defaultScopes))
}

// ValidateProvider checks the settings the login flow cannot run without.
// Issuer and JWKS URL stay optional: without them the gateway falls back to
// advisory (unverified) claims.
func (p Provider) ValidateProvider() error {
	var missing []string
	if p.GetProviderDomain() == "" {
		missing = append(missing, providerDomainVar)
	}
	if p.GetClientID() == "" {
		missing = append(missing, clientIDVar)
	}
	if p.GetRedirectURI() == "" {
		missing = append(missing, redirectURIVar)
	}
	if len(missing) > 0 {
		return errors.Wrapf(errors.ErrMissingConfig, "env %s", strings.Join(missing, ", "))
	}
	return nil
}
