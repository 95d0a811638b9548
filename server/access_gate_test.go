package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nobh/portal-gateway/server"
	"github.com/stretchr/testify/require"
)

func TestAccessGate(t *testing.T) {
	srv := newTestServer(t, "https://auth.example.com")

	t.Run("protected path without session redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/residents", nil))

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, server.RouteLoginStart+"?return_to=%2Fresidents", rec.Header().Get("Location"))
	})

	t.Run("query string rides along in return_to", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs?page=2", nil))

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, server.RouteLoginStart+"?return_to=%2Flogs%3Fpage%3D2", rec.Header().Get("Location"))
	})

	t.Run("access token cookie passes the gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, server.RouteAPIResidents, nil)
		req.AddCookie(&http.Cookie{Name: server.AccessTokenCookie, Value: "header.payload.access"})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "John Doe")
	})

	t.Run("id token cookie alone also passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, server.RouteAPIAnnouncements, nil)
		req.AddCookie(&http.Cookie{Name: server.IDTokenCookie, Value: "header.payload.id"})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty cookie value does not pass", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/residents", nil)
		req.AddCookie(&http.Cookie{Name: server.AccessTokenCookie, Value: ""})
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("health endpoint is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, server.RouteHealth, nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("whoami is public but self-authenticating", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, server.RouteSessionWhoami, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
