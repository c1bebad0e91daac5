package simulator

import (
	"math"

	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/metrics"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
)

// bookWalk accumulates the outcome of consuming opposing levels in order.
type bookWalk struct {
	fills     []simulationv1.FillLeg
	totalCost float64
	remaining float64
}

// walkBook consumes levels best-first until the quantity is exhausted, the
// book runs out, or a level breaches the limit price. A nil limitPrice
// disables the price gate.
func walkBook(book []orderbookv1.PriceLevel, side orderbookv1.Side, quantity float64, limitPrice *float64) bookWalk {
	walk := bookWalk{remaining: quantity}

	for i, level := range book {
		if walk.remaining <= 0 {
			break
		}
		if limitPrice != nil && !priceCrosses(level.Price, *limitPrice, side) {
			break
		}
		if level.Quantity <= 0 {
			continue
		}

		take := math.Min(walk.remaining, level.Quantity)
		walk.fills = append(walk.fills, simulationv1.FillLeg{
			Price:      level.Price,
			Quantity:   take,
			LevelIndex: i,
		})
		walk.totalCost += take * level.Price
		walk.remaining -= take
	}

	return walk
}

// priceCrosses reports whether an opposing level at levelPrice is executable
// against a limit order at limitPrice.
func priceCrosses(levelPrice, limitPrice float64, side orderbookv1.Side) bool {
	if side == orderbookv1.SideBuy {
		return levelPrice <= limitPrice
	}
	return levelPrice >= limitPrice
}

// simulateMarket walks the opposing side of the book without a price cap.
// Slippage and impact are measured against the pre-walk touch price.
func (s *Simulator) simulateMarket(snapshot *orderbookv1.Snapshot, request simulationv1.Request) simulationv1.Result {
	book := snapshot.Opposing(request.Side)
	if len(book) == 0 {
		return failedResult(request, reasonNoLiquidity)
	}

	touch := book[0].Price
	walk := walkBook(book, request.Side, request.Quantity, nil)
	filled := request.Quantity - walk.remaining

	if filled <= 0 {
		return failedResult(request, reasonExhaustedBook)
	}

	result := newResult(request)
	result.Fills = walk.fills
	result.FilledQuantity = filled
	result.RemainingQuantity = walk.remaining

	avg := walk.totalCost / filled
	result.AvgFillPrice = &avg
	if slippage, ok := metrics.SlippageBps(avg, touch, request.Side); ok {
		impact := math.Abs(slippage)
		result.SlippageBps = &slippage
		result.ImpactBps = &impact
	}

	if walk.remaining > 0 {
		result.Status = simulationv1.StatusPartialFill
	} else {
		result.Status = simulationv1.StatusFilled
	}
	return result
}
