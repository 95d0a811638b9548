package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nobh/portal-gateway/identity"
	"github.com/nobh/portal-gateway/internal/config"
	"github.com/nobh/portal-gateway/portal"
	"github.com/nobh/portal-gateway/provider"
	"github.com/nobh/portal-gateway/server/loginattempt"
)

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	handler   http.HandlerFunc
	routes    []string
	config    config.Config
	provider  *provider.Client
	refresher *provider.Refresher
	attempts  loginattempt.Repo
	verifier  *identity.Verifier // nil without an issuer; whoami falls back to advisory claims
	portal    portal.Store
}

func New(cfg config.Config, attempts loginattempt.Repo, store portal.Store) (*Server, error) {
	if err := cfg.ValidateProvider(); err != nil {
		return nil, fmt.Errorf("[Server New] provider configuration: %w", err)
	}

	client := provider.NewClient(provider.Settings{
		Domain:       cfg.GetProviderDomain(),
		ClientID:     cfg.GetClientID(),
		ClientSecret: cfg.GetClientSecret(),
		RedirectURI:  cfg.GetRedirectURI(),
		SignOutURI:   cfg.GetSignOutURI(),
		Scopes:       cfg.GetScopes(),
	})

	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		provider:  client,
		refresher: provider.NewRefresher(client),
		attempts:  attempts,
		portal:    store,
	}
	s.env = cfg.GetEnv()

	if cfg.GetIssuer() != "" {
		s.verifier = identity.NewVerifier(context.Background(), cfg.GetIssuer(), cfg.GetJWKSURL(), cfg.GetClientID())
	}

	s.initRoutes()

	// Every request passes the access gate before the mux sees it
	s.handler = ChainMiddleware(s.mux.ServeHTTP,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.SecurityHeadersMiddleware,
		s.AccessGateMiddleware,
	)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// writeJSON writes a JSON response body
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeJSONError writes an OAuth2-style error response
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             errorCode,
		"error_description": description,
	})
}
