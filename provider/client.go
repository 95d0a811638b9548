// Package provider is the server-to-server client for a hosted identity
// provider exposing /oauth2/authorize, /oauth2/token and /logout under one
// auth domain.
package provider

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nobh/portal-gateway/internal/errors"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds every call to the provider's token endpoint
const DefaultTimeout = 10 * time.Second

const (
	opExchange = "exchange"
	opRefresh  = "refresh"
)

// Error is a non-2xx answer from the provider's token endpoint. It unwraps
// to ErrExchangeRejected or ErrRefreshRejected so callers can classify with
// errors.Is while still reading the provider's status and error code.
type Error struct {
	Op          string
	StatusCode  int
	Code        string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s failed: status %d %s: %s", e.Op, e.StatusCode, e.Code, e.Description)
}

func (e *Error) Unwrap() error {
	if e.Op == opRefresh {
		return errors.ErrRefreshRejected
	}
	return errors.ErrExchangeRejected
}

// Settings configures a Client. Domain, ClientID and RedirectURI are
// required; everything else has a usable default.
type Settings struct {
	Domain       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	SignOutURI   string
	Scopes       []string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

type Client struct {
	oauth      oauth2.Config
	domain     string
	signOutURI string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(s Settings) *Client {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		oauth: oauth2.Config{
			ClientID:     s.ClientID,
			ClientSecret: s.ClientSecret,
			RedirectURL:  s.RedirectURI,
			Scopes:       s.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  s.Domain + "/oauth2/authorize",
				TokenURL: s.Domain + "/oauth2/token",
			},
		},
		domain:     s.Domain,
		signOutURI: s.SignOutURI,
		timeout:    timeout,
		httpClient: httpClient,
	}
}

// AuthCodeURL builds the browser-facing authorize URL carrying the S256
// challenge. state must be the attempt id so the callback can correlate the
// verifier.
func (c *Client) AuthCodeURL(state, challenge string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// Exchange redeems a one-time authorization code with the matching PKCE
// verifier. The redirect_uri sent here matches the one used on /authorize
// byte for byte; providers reject the grant otherwise.
func (c *Client) Exchange(ctx context.Context, code, verifier string) (*TokenSet, error) {
	if code == "" {
		return nil, errors.Wrapf(errors.ErrExchangeRejected, "empty authorization code")
	}
	if verifier == "" {
		return nil, errors.ErrMissingVerifier
	}

	ctx, cancel := c.providerContext(ctx)
	defer cancel()

	tok, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, classify(opExchange, err)
	}

	ts := newTokenSet(tok)
	if ts.AccessToken == "" || ts.IDToken == "" {
		return nil, errors.Wrapf(errors.ErrExchangeRejected, "token response missing access or id token")
	}
	return ts, nil
}

// Refresh mints new access/ID tokens from a refresh token. The returned
// set's RefreshToken is empty when the provider did not rotate it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, errors.Wrapf(errors.ErrRefreshRejected, "empty refresh token")
	}

	ctx, cancel := c.providerContext(ctx)
	defer cancel()

	tok, err := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, classify(opRefresh, err)
	}

	ts := newTokenSet(tok)
	if ts.AccessToken == "" {
		return nil, errors.Wrapf(errors.ErrRefreshRejected, "token response missing access token")
	}
	// TokenSource echoes the input refresh token when it was not rotated;
	// report only genuine rotations so callers keep their long-lived cookie.
	if ts.RefreshToken == refreshToken {
		ts.RefreshToken = ""
	}
	return ts, nil
}

// LogoutURL returns the provider's logout endpoint, or "" when no sign-out
// URI is configured.
func (c *Client) LogoutURL() string {
	if c.signOutURI == "" {
		return ""
	}
	q := url.Values{}
	q.Set("client_id", c.oauth.ClientID)
	q.Set("logout_uri", c.signOutURI)
	return c.domain + "/logout?" + q.Encode()
}

func (c *Client) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return context.WithTimeout(ctx, c.timeout)
}

// classify splits token-endpoint failures into "the provider answered and
// said no" versus "the provider could not be reached".
func classify(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if stderrors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return &Error{
			Op:          op,
			StatusCode:  status,
			Code:        retrieveErr.ErrorCode,
			Description: retrieveErr.ErrorDescription,
		}
	}
	return errors.Wrapf(errors.ErrProviderUnavailable, "provider %s: %v", op, err)
}
