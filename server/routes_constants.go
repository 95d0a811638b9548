package server

// Route path constants
// All gateway routes are defined here to ensure consistency and prevent typos
const (
	// Login flow
	RouteLoginStart    = "/login/start"
	RouteLoginCallback = "/login/callback"

	// Session management
	RouteSessionRefresh = "/session/refresh"
	RouteSessionLogout  = "/session/logout"
	RouteSessionWhoami  = "/session/whoami"

	// Operational
	RouteHealth = "/health"

	// Protected portal API
	RouteAPIResidents     = "/api/v1/residents"
	RouteAPIVisitors      = "/api/v1/visitors"
	RouteAPILogs          = "/api/v1/logs"
	RouteAPIAnnouncements = "/api/v1/announcements"
)

// ReturnToParam carries the post-login destination into the login flow.
// It is the single return-path carrier; the OAuth2 state parameter holds
// the attempt id, never the path itself.
const ReturnToParam = "return_to"

// DefaultLandingPath is where invalid or absent return paths resolve to
const DefaultLandingPath = "/"
