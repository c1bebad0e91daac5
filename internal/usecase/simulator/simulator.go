// Package simulator implements the order execution simulation engine: a
// pure function of (depth snapshot, order request) to an execution outcome.
package simulator

import (
	"fmt"
	"math"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
)

const (
	reasonInvalidQuantity   = "invalid quantity"
	reasonInvalidLimitPrice = "invalid limit price"
	reasonMissingLimitPrice = "missing limit price"
	reasonInvalidSide       = "invalid side"
	reasonInvalidOrderType  = "invalid order type"
	reasonMissingSnapshot   = "missing snapshot"
	reasonNoLiquidity       = "no liquidity"
	reasonExhaustedBook     = "exhausted book"
	reasonNoMarketData      = "no market data"
)

// turnoverRatePerSecond assumes 10% of visible liquidity trades per minute.
// A placeholder policy, not a calibrated model.
const turnoverRatePerSecond = 0.1 / 60

// Simulator is the stateless simulation engine. It holds no cross-call
// state and is safe for concurrent use.
type Simulator struct{}

// NewSimulator creates a new Simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Simulate validates the request, dispatches to the market or limit path
// and returns a canonical Result. It never panics across this boundary;
// any internal fault is converted into a StatusError result.
func (s *Simulator) Simulate(snapshot *orderbookv1.Snapshot, request simulationv1.Request) (result simulationv1.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(request, fmt.Sprintf("internal fault: %v", r))
		}
	}()

	if !isFinite(request.Quantity) || request.Quantity <= 0 {
		return errorResult(request, reasonInvalidQuantity)
	}
	if !request.Side.IsValid() {
		return errorResult(request, reasonInvalidSide)
	}
	if snapshot == nil {
		return errorResult(request, reasonMissingSnapshot)
	}

	switch request.Type {
	case simulationv1.OrderTypeMarket:
		return s.simulateMarket(snapshot, request)
	case simulationv1.OrderTypeLimit:
		if request.LimitPrice == nil {
			return errorResult(request, reasonMissingLimitPrice)
		}
		if !isFinite(*request.LimitPrice) || *request.LimitPrice <= 0 {
			return errorResult(request, reasonInvalidLimitPrice)
		}
		return s.simulateLimit(snapshot, request)
	default:
		return errorResult(request, reasonInvalidOrderType)
	}
}

// newResult seeds a Result echoing the request, with nothing filled yet.
func newResult(request simulationv1.Request) simulationv1.Result {
	return simulationv1.Result{
		Venue:             request.Venue,
		Side:              request.Side,
		Type:              request.Type,
		Quantity:          request.Quantity,
		RemainingQuantity: request.Quantity,
		LimitPrice:        request.LimitPrice,
	}
}

// errorResult builds the StatusError variant: it echoes the request and
// carries a reason, no numeric outcome fields.
func errorResult(request simulationv1.Request, reason string) simulationv1.Result {
	result := newResult(request)
	result.Status = simulationv1.StatusError
	result.Reason = reason
	return result
}

func failedResult(request simulationv1.Request, reason string) simulationv1.Result {
	result := newResult(request)
	result.Status = simulationv1.StatusFailed
	result.Reason = reason
	return result
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
