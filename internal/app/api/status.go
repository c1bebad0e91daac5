package api

import (
	"net/http"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
)

type statusPayload struct {
	Feeds []feedv1.Status `json:"feeds"`
}

// handleStatus returns the latest connection state of every venue feed.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	statuses := s.store.Statuses()
	if statuses == nil {
		statuses = []feedv1.Status{}
	}
	writeSuccess(w, http.StatusOK, statusPayload{Feeds: statuses})
}
