package simulator

import (
	"math"

	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/metrics"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
)

// simulateLimit classifies the order as aggressive or passive against the
// opposing touch and dispatches. Both book sides must be populated; limit
// classification is meaningless otherwise.
func (s *Simulator) simulateLimit(snapshot *orderbookv1.Snapshot, request simulationv1.Request) simulationv1.Result {
	if !snapshot.HasBothSides() {
		return failedResult(request, reasonNoMarketData)
	}

	limitPrice := *request.LimitPrice
	bestBid, _ := snapshot.BestBid()
	bestAsk, _ := snapshot.BestAsk()

	aggressive := (request.Side == orderbookv1.SideBuy && limitPrice >= bestAsk.Price) ||
		(request.Side == orderbookv1.SideSell && limitPrice <= bestBid.Price)

	if aggressive {
		return s.simulateAggressiveLimit(snapshot, request, limitPrice)
	}
	return s.simulatePassiveLimit(snapshot, request, limitPrice)
}

// simulateAggressiveLimit walks the opposing side capped at the limit price.
// Whatever crosses fills immediately; the remainder rests at limitPrice with
// a queue position. Slippage is against the pre-walk touch, same reference
// as a market order.
func (s *Simulator) simulateAggressiveLimit(snapshot *orderbookv1.Snapshot, request simulationv1.Request, limitPrice float64) simulationv1.Result {
	book := snapshot.Opposing(request.Side)
	touch := book[0].Price
	walk := walkBook(book, request.Side, request.Quantity, &limitPrice)
	filled := request.Quantity - walk.remaining

	result := newResult(request)
	result.Fills = walk.fills
	result.FilledQuantity = filled
	result.RemainingQuantity = walk.remaining

	if filled > 0 {
		avg := walk.totalCost / filled
		result.AvgFillPrice = &avg
		if slippage, ok := metrics.SlippageBps(avg, touch, request.Side); ok {
			impact := math.Abs(slippage)
			result.SlippageBps = &slippage
			result.ImpactBps = &impact
		}
		ttf := int64(0)
		result.EstimatedTimeToFillSeconds = &ttf
	}

	switch {
	case filled <= 0:
		result.Status = simulationv1.StatusResting
		position := queuePosition(snapshot.SameSide(request.Side), request.Side, limitPrice)
		result.QueuePosition = &position
	case walk.remaining > 0:
		result.Status = simulationv1.StatusPartialFill
		position := queuePosition(snapshot.SameSide(request.Side), request.Side, limitPrice)
		result.QueuePosition = &position
	default:
		result.Status = simulationv1.StatusFilled
	}
	return result
}

// simulatePassiveLimit never fills anything up front. It reports where the
// order would sit in the queue, a turnover-based time-to-fill estimate, and
// the distance of the limit price from mid as slippage.
func (s *Simulator) simulatePassiveLimit(snapshot *orderbookv1.Snapshot, request simulationv1.Request, limitPrice float64) simulationv1.Result {
	result := newResult(request)
	result.Status = simulationv1.StatusResting

	position := queuePosition(snapshot.SameSide(request.Side), request.Side, limitPrice)
	result.QueuePosition = &position

	ttf := estimateTimeToFill(snapshot.Opposing(request.Side), request.Side, limitPrice)
	result.EstimatedTimeToFillSeconds = &ttf

	if mid, ok := metrics.MidPrice(snapshot); ok {
		if slippage, ok := metrics.SlippageBps(limitPrice, mid, request.Side); ok {
			impact := math.Abs(slippage)
			result.SlippageBps = &slippage
			result.ImpactBps = &impact
		}
	}
	return result
}

// queuePosition scans same-side levels best-first. Levels priced strictly
// better than limitPrice count in full, a level at exactly limitPrice counts
// in full as well (conservative back-of-level assumption), and the scan
// stops at the first worse level.
func queuePosition(sameSide []orderbookv1.PriceLevel, side orderbookv1.Side, limitPrice float64) simulationv1.QueuePosition {
	var (
		levelsAhead   int
		quantityAhead float64
		levelExists   bool
	)

	for _, level := range sameSide {
		better := (side == orderbookv1.SideBuy && level.Price > limitPrice) ||
			(side == orderbookv1.SideSell && level.Price < limitPrice)
		if better {
			levelsAhead++
			quantityAhead += level.Quantity
			continue
		}
		if level.Price == limitPrice {
			levelsAhead++
			quantityAhead += level.Quantity
			levelExists = true
		}
		break
	}

	return simulationv1.QueuePosition{
		LevelsAhead:         levelsAhead,
		QuantityAhead:       quantityAhead,
		WouldCreateNewLevel: !levelExists,
	}
}

// estimateTimeToFill sums opposing liquidity priced at least as good as
// limitPrice and scales it by the assumed turnover rate. Never reports less
// than one second, even against an empty window.
func estimateTimeToFill(opposing []orderbookv1.PriceLevel, side orderbookv1.Side, limitPrice float64) int64 {
	liquidity := 0.0
	for _, level := range opposing {
		if !priceCrosses(level.Price, limitPrice, side) {
			break
		}
		liquidity += level.Quantity
	}

	seconds := int64(math.Round(liquidity * turnoverRatePerSecond))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
