// Package metrics derives mid price, spread and execution-quality numbers
// from depth-of-book snapshots.
//
// Every function returns an ok boolean instead of NaN/Inf when the input
// does not define the value, e.g. a one-sided book or a zero reference
// price. Callers must branch on the boolean, never on a numeric zero.
package metrics

import (
	"math"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// bpsFactor converts a price ratio to basis points.
const bpsFactor = 10000.0

// MidPrice computes (bestBid + bestAsk) / 2. Undefined when either side
// of the book is empty.
func MidPrice(snapshot *orderbookv1.Snapshot) (float64, bool) {
	bid, okBid := snapshot.BestBid()
	ask, okAsk := snapshot.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}

	return (bid.Price + ask.Price) / 2, true
}

// SpreadBps computes (bestAsk - bestBid) / mid in basis points. Undefined
// when the mid price is undefined.
func SpreadBps(snapshot *orderbookv1.Snapshot) (float64, bool) {
	mid, ok := MidPrice(snapshot)
	if !ok || mid == 0 {
		return 0, false
	}

	bid, _ := snapshot.BestBid()
	ask, _ := snapshot.BestAsk()

	return (ask.Price - bid.Price) / mid * bpsFactor, true
}

// SlippageBps computes the directional deviation of an achieved fill price
// from a reference price in basis points. The sign is flipped for sells so
// a worse execution is always positive. Undefined for a zero or non-finite
// reference.
func SlippageBps(avgFillPrice, referencePrice float64, side orderbookv1.Side) (float64, bool) {
	if referencePrice == 0 || !isFinite(referencePrice) || !isFinite(avgFillPrice) {
		return 0, false
	}

	slippage := (avgFillPrice - referencePrice) / referencePrice * bpsFactor
	if side == orderbookv1.SideSell {
		slippage = -slippage
	}

	if !isFinite(slippage) {
		return 0, false
	}
	return slippage, true
}

// ImpactBps is the magnitude of slippage attributable to consuming book
// liquidity. Undefined whenever the slippage is.
func ImpactBps(avgFillPrice, referencePrice float64, side orderbookv1.Side) (float64, bool) {
	slippage, ok := SlippageBps(avgFillPrice, referencePrice, side)
	if !ok {
		return 0, false
	}
	return math.Abs(slippage), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
