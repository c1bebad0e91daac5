package simulator

import (
	"testing"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(bids, asks [][2]float64) *orderbookv1.Snapshot {
	snap := &orderbookv1.Snapshot{Venue: "okx"}
	for _, level := range bids {
		snap.Bids = append(snap.Bids, orderbookv1.PriceLevel{Price: level[0], Quantity: level[1]})
	}
	for _, level := range asks {
		snap.Asks = append(snap.Asks, orderbookv1.PriceLevel{Price: level[0], Quantity: level[1]})
	}
	return snap
}

func marketRequest(side orderbookv1.Side, quantity float64) simulationv1.Request {
	return simulationv1.Request{
		Venue:    "okx",
		Side:     side,
		Type:     simulationv1.OrderTypeMarket,
		Quantity: quantity,
	}
}

func TestSimulateMarket_BuyWalksAsks(t *testing.T) {
	snap := testSnapshot(
		[][2]float64{{99, 10}},
		[][2]float64{{100, 2}, {101, 3}, {102, 10}},
	)

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideBuy, 5))

	assert.Equal(t, simulationv1.StatusFilled, result.Status)
	assert.Equal(t, 5.0, result.FilledQuantity)
	assert.Equal(t, 0.0, result.RemainingQuantity)

	require.Len(t, result.Fills, 2)
	assert.Equal(t, simulationv1.FillLeg{Price: 100, Quantity: 2, LevelIndex: 0}, result.Fills[0])
	assert.Equal(t, simulationv1.FillLeg{Price: 101, Quantity: 3, LevelIndex: 1}, result.Fills[1])

	// (2*100 + 3*101) / 5
	require.NotNil(t, result.AvgFillPrice)
	assert.InDelta(t, 100.6, *result.AvgFillPrice, 1e-9)

	// (100.6 - 100) / 100 * 10000
	require.NotNil(t, result.SlippageBps)
	assert.InDelta(t, 60.0, *result.SlippageBps, 1e-9)
	require.NotNil(t, result.ImpactBps)
	assert.InDelta(t, 60.0, *result.ImpactBps, 1e-9)
}

func TestSimulateMarket_SellPartialFill(t *testing.T) {
	snap := testSnapshot(
		[][2]float64{{99, 4}},
		[][2]float64{{100, 5}},
	)

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideSell, 10))

	assert.Equal(t, simulationv1.StatusPartialFill, result.Status)
	assert.Equal(t, 4.0, result.FilledQuantity)
	assert.Equal(t, 6.0, result.RemainingQuantity)

	require.Len(t, result.Fills, 1)
	assert.Equal(t, 99.0, result.Fills[0].Price)

	require.NotNil(t, result.AvgFillPrice)
	assert.Equal(t, 99.0, *result.AvgFillPrice)

	// Filled exactly at the touch, zero slippage.
	require.NotNil(t, result.SlippageBps)
	assert.Equal(t, 0.0, *result.SlippageBps)
}

func TestSimulateMarket_SellSlippageSignFlipped(t *testing.T) {
	snap := testSnapshot(
		[][2]float64{{100, 1}, {90, 1}},
		[][2]float64{{101, 1}},
	)

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideSell, 2))

	assert.Equal(t, simulationv1.StatusFilled, result.Status)
	require.NotNil(t, result.AvgFillPrice)
	assert.Equal(t, 95.0, *result.AvgFillPrice)

	// Selling below the touch is worse execution, so positive bps.
	require.NotNil(t, result.SlippageBps)
	assert.InDelta(t, 500.0, *result.SlippageBps, 1e-9)
	require.NotNil(t, result.ImpactBps)
	assert.InDelta(t, 500.0, *result.ImpactBps, 1e-9)
}

func TestSimulateMarket_EmptyOpposingSideFails(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 4}}, nil)

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideBuy, 1))

	assert.Equal(t, simulationv1.StatusFailed, result.Status)
	assert.Equal(t, "no liquidity", result.Reason)
	assert.Equal(t, 0.0, result.FilledQuantity)
	assert.Equal(t, 1.0, result.RemainingQuantity)
	assert.Nil(t, result.AvgFillPrice)
	assert.Nil(t, result.SlippageBps)
	assert.Empty(t, result.Fills)
}

func TestSimulateMarket_ZeroQuantityLevelsSkipped(t *testing.T) {
	snap := testSnapshot(
		nil,
		[][2]float64{{100, 0}, {101, 3}},
	)

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideBuy, 2))

	assert.Equal(t, simulationv1.StatusFilled, result.Status)
	require.Len(t, result.Fills, 1)
	assert.Equal(t, 101.0, result.Fills[0].Price)
	assert.Equal(t, 1, result.Fills[0].LevelIndex)
}

func TestSimulateMarket_OnlyEmptyLevelsExhaustsBook(t *testing.T) {
	snap := testSnapshot(nil, [][2]float64{{100, 0}})

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideBuy, 2))

	assert.Equal(t, simulationv1.StatusFailed, result.Status)
	assert.Equal(t, "exhausted book", result.Reason)
}
