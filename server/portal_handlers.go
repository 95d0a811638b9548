package server

import (
	"encoding/json"
	"net/http"

	"github.com/nobh/portal-gateway/portal"
)

// listResponse matches the {"data": [...]} envelope the portal UI consumes
type listResponse struct {
	Data any `json:"data"`
}

func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeJSONError(w, "not_found", "no such route", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"app": s.config.GetAppName()})
	}
}

func (s *Server) ResidentsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listResponse{Data: s.portal.ListResidents()})
	}
}

func (s *Server) VisitorsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listResponse{Data: s.portal.ListVisitors()})
	}
}

func (s *Server) VisitorCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v portal.Visitor
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			writeJSONError(w, "invalid_request", "malformed visitor body", http.StatusBadRequest)
			return
		}
		created, err := s.portal.AddVisitor(v)
		if err != nil {
			writeJSONError(w, "invalid_request", err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *Server) AccessLogsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listResponse{Data: s.portal.ListAccessLogs()})
	}
}

func (s *Server) AnnouncementsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, listResponse{Data: s.portal.ListAnnouncements()})
	}
}
