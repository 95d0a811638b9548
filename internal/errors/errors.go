package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portal gateway
var (
	// Configuration errors
	ErrMissingConfig = errors.New("missing configuration")

	// Login flow errors
	ErrMissingVerifier   = errors.New("missing PKCE verifier")
	ErrInvalidReturnPath = errors.New("invalid return path")

	// Provider errors
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrExchangeRejected    = errors.New("token exchange rejected")
	ErrRefreshRejected     = errors.New("token refresh rejected")

	// Token verification errors
	ErrTokenExpired     = errors.New("token expired")
	ErrBadSignature     = errors.New("bad token signature")
	ErrIssuerMismatch   = errors.New("issuer mismatch")
	ErrAudienceMismatch = errors.New("audience mismatch")
	ErrMalformedToken   = errors.New("malformed token")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
