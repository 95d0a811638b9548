package config

type Config interface {
	EnvConfig
	ProviderConfig
	CookieConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type ProviderConfig interface {
	GetProviderDomain() string
	GetIssuer() string
	GetJWKSURL() string
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetSignOutURI() string
	GetScopes() []string
	ValidateProvider() error
}

type CookieConfig interface {
	GetSecureCookies() bool
}

type mainConfig struct {
	EnvVars
	Provider
	Cookies
}

func New() Config {
	return mainConfig{}
}
