package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_BestBidAsk(t *testing.T) {
	snap := &Snapshot{
		Venue: "okx",
		Bids:  []PriceLevel{{Price: 99, Quantity: 1}, {Price: 98, Quantity: 2}},
		Asks:  []PriceLevel{{Price: 100, Quantity: 3}},
	}

	bid, ok := snap.BestBid()
	require.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 99, Quantity: 1}, bid)

	ask, ok := snap.BestAsk()
	require.True(t, ok)
	assert.Equal(t, PriceLevel{Price: 100, Quantity: 3}, ask)
}

func TestSnapshot_BestBidAsk_Empty(t *testing.T) {
	snap := &Snapshot{Venue: "okx"}

	_, ok := snap.BestBid()
	assert.False(t, ok)

	_, ok = snap.BestAsk()
	assert.False(t, ok)
}

func TestSnapshot_Opposing(t *testing.T) {
	snap := &Snapshot{
		Bids: []PriceLevel{{Price: 99, Quantity: 1}},
		Asks: []PriceLevel{{Price: 100, Quantity: 2}},
	}

	assert.Equal(t, snap.Asks, snap.Opposing(SideBuy))
	assert.Equal(t, snap.Bids, snap.Opposing(SideSell))
	assert.Equal(t, snap.Bids, snap.SameSide(SideBuy))
	assert.Equal(t, snap.Asks, snap.SameSide(SideSell))
}

func TestSnapshot_HasBothSides(t *testing.T) {
	assert.False(t, (&Snapshot{}).HasBothSides())
	assert.False(t, (&Snapshot{Bids: []PriceLevel{{Price: 99, Quantity: 1}}}).HasBothSides())
	assert.True(t, (&Snapshot{
		Bids: []PriceLevel{{Price: 99, Quantity: 1}},
		Asks: []PriceLevel{{Price: 100, Quantity: 1}},
	}).HasBothSides())
}

func TestSide_IsValid(t *testing.T) {
	assert.True(t, SideBuy.IsValid())
	assert.True(t, SideSell.IsValid())
	assert.False(t, Side("hold").IsValid())
	assert.False(t, Side("").IsValid())
}
