package server

import "strings"

// SanitizeReturnPath validates a post-login destination. Anything that is
// not a same-origin absolute path falls back to the landing page: values
// must start with "/" and must not start with "//", which browsers treat
// as a protocol-relative URL to another host.
func SanitizeReturnPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return DefaultLandingPath
	}
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return DefaultLandingPath
	}
	return path
}
