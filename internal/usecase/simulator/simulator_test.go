package simulator

import (
	"math"
	"testing"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	simulationv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/simulation/v1"
	"github.com/stretchr/testify/assert"
)

func TestSimulate_InvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -3},
		{name: "nan", quantity: math.NaN()},
		{name: "infinite", quantity: math.Inf(1)},
	}

	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})
	engine := NewSimulator()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Simulate(snap, marketRequest(orderbookv1.SideBuy, tc.quantity))

			assert.Equal(t, simulationv1.StatusError, result.Status)
			assert.Equal(t, "invalid quantity", result.Reason)
			assert.Nil(t, result.AvgFillPrice)
			assert.Empty(t, result.Fills)
		})
	}
}

func TestSimulate_MissingLimitPrice(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})

	result := NewSimulator().Simulate(snap, simulationv1.Request{
		Venue:    "okx",
		Side:     orderbookv1.SideBuy,
		Type:     simulationv1.OrderTypeLimit,
		Quantity: 1,
	})

	assert.Equal(t, simulationv1.StatusError, result.Status)
	assert.Equal(t, "missing limit price", result.Reason)
}

func TestSimulate_InvalidLimitPrice(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})

	result := NewSimulator().Simulate(snap, limitRequest(orderbookv1.SideBuy, 1, -5))

	assert.Equal(t, simulationv1.StatusError, result.Status)
	assert.Equal(t, "invalid limit price", result.Reason)
}

func TestSimulate_InvalidSide(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})

	result := NewSimulator().Simulate(snap, simulationv1.Request{
		Venue:    "okx",
		Side:     orderbookv1.Side("hold"),
		Type:     simulationv1.OrderTypeMarket,
		Quantity: 1,
	})

	assert.Equal(t, simulationv1.StatusError, result.Status)
	assert.Equal(t, "invalid side", result.Reason)
}

func TestSimulate_InvalidOrderType(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})

	result := NewSimulator().Simulate(snap, simulationv1.Request{
		Venue:    "okx",
		Side:     orderbookv1.SideBuy,
		Type:     simulationv1.OrderType("stop"),
		Quantity: 1,
	})

	assert.Equal(t, simulationv1.StatusError, result.Status)
	assert.Equal(t, "invalid order type", result.Reason)
}

func TestSimulate_NilSnapshot(t *testing.T) {
	result := NewSimulator().Simulate(nil, marketRequest(orderbookv1.SideBuy, 1))

	assert.Equal(t, simulationv1.StatusError, result.Status)
	assert.Equal(t, "missing snapshot", result.Reason)
}

func TestSimulate_ResultEchoesRequest(t *testing.T) {
	snap := testSnapshot([][2]float64{{99, 1}}, [][2]float64{{100, 1}})

	result := NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideSell, 2))

	assert.Equal(t, "okx", result.Venue)
	assert.Equal(t, orderbookv1.SideSell, result.Side)
	assert.Equal(t, simulationv1.OrderTypeMarket, result.Type)
	assert.Equal(t, 2.0, result.Quantity)
}

func TestSimulate_Deterministic(t *testing.T) {
	snap := testSnapshot(
		[][2]float64{{99, 4}, {98, 2}},
		[][2]float64{{100, 2}, {101, 3}},
	)
	request := limitRequest(orderbookv1.SideBuy, 5, 101)
	engine := NewSimulator()

	first := engine.Simulate(snap, request)
	second := engine.Simulate(snap, request)

	assert.Equal(t, first, second)
}

func TestSimulate_DoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot(
		[][2]float64{{99, 4}},
		[][2]float64{{100, 2}, {101, 3}},
	)

	NewSimulator().Simulate(snap, marketRequest(orderbookv1.SideBuy, 4))

	assert.Equal(t, []orderbookv1.PriceLevel{{Price: 100, Quantity: 2}, {Price: 101, Quantity: 3}}, snap.Asks)
	assert.Equal(t, []orderbookv1.PriceLevel{{Price: 99, Quantity: 4}}, snap.Bids)
}
