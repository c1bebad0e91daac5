package orderbookv1

import "time"

// MaxDepth is the maximum number of levels a snapshot keeps per side.
const MaxDepth = 15

// Side represents the side of an order.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "buy"
	// SideSell represents a sell order.
	SideSell Side = "sell"
)

// IsValid checks if the side is one of the known values.
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// PriceLevel is a single visible price level of a depth-of-book snapshot.
type PriceLevel struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// Snapshot is an immutable top-of-book view of a single venue.
//
// Bids are sorted descending by price and asks ascending, each side holding
// at most MaxDepth levels with at most one entry per price. Either side may
// be empty when no liquidity has been observed yet. The simulation engine
// treats a snapshot as read-only for the duration of a call.
type Snapshot struct {
	Venue      string       `json:"venue"`
	Bids       []PriceLevel `json:"bids"`
	Asks       []PriceLevel `json:"asks"`
	ObservedAt time.Time    `json:"observedAt"`
}

// BestBid returns the highest bid level. The boolean reports presence;
// callers must branch on it rather than on a zero price.
func (s *Snapshot) BestBid() (PriceLevel, bool) {
	if len(s.Bids) == 0 {
		return PriceLevel{}, false
	}
	return s.Bids[0], true
}

// BestAsk returns the lowest ask level. The boolean reports presence.
func (s *Snapshot) BestAsk() (PriceLevel, bool) {
	if len(s.Asks) == 0 {
		return PriceLevel{}, false
	}
	return s.Asks[0], true
}

// Opposing returns the side of the book a taker order of the given side
// would match against: asks for a buy, bids for a sell.
func (s *Snapshot) Opposing(side Side) []PriceLevel {
	if side == SideBuy {
		return s.Asks
	}
	return s.Bids
}

// SameSide returns the side of the book a resting order of the given side
// would queue on: bids for a buy, asks for a sell.
func (s *Snapshot) SameSide(side Side) []PriceLevel {
	if side == SideBuy {
		return s.Bids
	}
	return s.Asks
}

// HasBothSides reports whether both sides carry at least one level.
func (s *Snapshot) HasBothSides() bool {
	return len(s.Bids) > 0 && len(s.Asks) > 0
}
