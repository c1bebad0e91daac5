package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/metrics"
)

type orderbookPayload struct {
	orderbookv1.Snapshot
	MidPrice  *float64 `json:"midPrice"`
	SpreadBps *float64 `json:"spreadBps"`
}

// handleOrderbook returns the venue's latest snapshot with derived mid
// price and spread. Both are null while the book is one-sided.
func (s *Server) handleOrderbook(w http.ResponseWriter, r *http.Request) {
	venue := chi.URLParam(r, "venue")

	snapshot, ok := s.store.Latest(venue)
	if !ok {
		writeError(w, http.StatusNotFound, "no snapshot for venue "+venue, errors.GeneralNotFoundError, nil)
		return
	}

	payload := orderbookPayload{Snapshot: snapshot}
	if mid, ok := metrics.MidPrice(&snapshot); ok {
		payload.MidPrice = &mid
	}
	if spread, ok := metrics.SpreadBps(&snapshot); ok {
		payload.SpreadBps = &spread
	}

	writeSuccess(w, http.StatusOK, payload)
}
