package config

type Cookies struct{}

var _ CookieConfig = Cookies{}

// GetSecureCookies reports whether session cookies must carry the Secure
// flag. Defaults to on outside DEV so local unencrypted development still
// receives cookies; SECURE_COOKIES overrides in either direction.
func (Cookies) GetSecureCookies() bool {
	switch GetEnv("SECURE_COOKIES", "") {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return (EnvVars{}).GetEnv() != "DEV"
}
