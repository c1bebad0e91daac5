package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
)

// maxDelaySeconds caps the optional execution delay of a simulation call.
const maxDelaySeconds = 60

type simulateRequest struct {
	Venue        string                 `json:"venue"`
	Side         orderbookv1.Side       `json:"side"`
	Type         simulationv1.OrderType `json:"orderType"`
	Quantity     float64                `json:"quantity"`
	LimitPrice   *float64               `json:"limitPrice,omitempty"`
	DelaySeconds int                    `json:"delaySeconds,omitempty"`
}

// simulatePayload is a Result tagged with a server-assigned id. The engine
// itself stays id-free so identical inputs keep producing identical results.
type simulatePayload struct {
	SimulationID string `json:"simulationId"`
	simulationv1.Result
}

// handleSimulate runs one order simulation against the venue's latest
// snapshot. A non-zero delaySeconds waits first and captures the snapshot
// after the delay, so the order executes against the book as it is then.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", errors.GeneralBadRequestError, nil)
		return
	}

	if req.DelaySeconds < 0 || req.DelaySeconds > maxDelaySeconds {
		writeError(w, http.StatusBadRequest, "delaySeconds out of range", errors.GeneralBadRequestError, nil)
		return
	}

	if req.DelaySeconds > 0 {
		timer := time.NewTimer(time.Duration(req.DelaySeconds) * time.Second)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-r.Context().Done():
			return
		}
	}

	snapshot, ok := s.store.Latest(req.Venue)
	if !ok {
		writeError(w, http.StatusNotFound, "no snapshot for venue "+req.Venue, errors.GeneralNotFoundError, nil)
		return
	}

	started := time.Now()
	result := s.engine.Simulate(&snapshot, simulationv1.Request{
		Venue:      req.Venue,
		Side:       req.Side,
		Type:       req.Type,
		Quantity:   req.Quantity,
		LimitPrice: req.LimitPrice,
	})

	if s.metrics != nil {
		s.metrics.RecordSimulation(string(req.Type), string(result.Status),
			float64(time.Since(started).Microseconds())/1000)
	}

	payload := simulatePayload{
		SimulationID: ulid.Make().String(),
		Result:       result,
	}

	if result.Status == simulationv1.StatusError {
		s.logger.WarnContext(r.Context(), "simulation rejected",
			logger.Field{Key: "venue", Value: req.Venue},
			logger.Field{Key: "reason", Value: result.Reason},
		)
		writeError(w, http.StatusBadRequest, result.Reason, errorCodeForReason(result.Reason), payload)
		return
	}

	writeSuccess(w, http.StatusOK, payload)
}

func errorCodeForReason(reason string) errors.ErrorCode {
	switch reason {
	case "invalid quantity":
		return errors.ErrInvalidQuantity
	case "missing limit price", "invalid limit price":
		return errors.ErrMissingLimitPrice
	default:
		return errors.GeneralBadRequestError
	}
}
