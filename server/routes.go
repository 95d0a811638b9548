package server

func (s *Server) initRoutes() {
	// LOGIN FLOW
	s.RegisterRouteFunc("GET "+RouteLoginStart, s.LoginStartHandler())
	s.RegisterRouteFunc("GET "+RouteLoginCallback, s.LoginCallbackHandler())

	// SESSION
	s.RegisterRouteFunc("POST "+RouteSessionRefresh, s.SessionRefreshHandler())
	s.RegisterRouteFunc("GET "+RouteSessionLogout, s.SessionLogoutHandler())
	s.RegisterRouteFunc("POST "+RouteSessionLogout, s.SessionLogoutHandler())
	s.RegisterRouteFunc("GET "+RouteSessionWhoami, s.SessionWhoamiHandler())

	// OPERATIONAL
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// PORTAL API (protected by the access gate)
	s.RegisterRouteFunc("GET "+RouteAPIResidents, s.ResidentsListHandler())
	s.RegisterRouteFunc("GET "+RouteAPIVisitors, s.VisitorsListHandler())
	s.RegisterRouteFunc("POST "+RouteAPIVisitors, s.VisitorCreateHandler())
	s.RegisterRouteFunc("GET "+RouteAPILogs, s.AccessLogsListHandler())
	s.RegisterRouteFunc("GET "+RouteAPIAnnouncements, s.AnnouncementsListHandler())

	s.RegisterRouteFunc("GET /", s.IndexHandler())
}
