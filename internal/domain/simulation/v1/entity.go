package simulationv1

import (
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// OrderType represents the type of a simulated order.
type OrderType string

const (
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "limit"
)

// IsValid checks if the order type is one of the known values.
func (t OrderType) IsValid() bool {
	return t == OrderTypeMarket || t == OrderTypeLimit
}

// Status represents the outcome class of a simulation.
type Status string

const (
	// StatusFilled means the full quantity was consumed from the book.
	StatusFilled Status = "filled"
	// StatusPartialFill means some but not all of the quantity was consumed.
	StatusPartialFill Status = "partial_fill"
	// StatusResting means nothing filled and the order would rest in the book.
	StatusResting Status = "resting"
	// StatusFailed means the book could not serve the order at all.
	StatusFailed Status = "failed"
	// StatusError means the request was invalid or the computation faulted.
	StatusError Status = "error"
)

// Request describes a hypothetical order to simulate against a snapshot.
// LimitPrice must be set if and only if Type is OrderTypeLimit.
type Request struct {
	Venue      string           `json:"venue"`
	Side       orderbookv1.Side `json:"side"`
	Type       OrderType        `json:"orderType"`
	Quantity   float64          `json:"quantity"`
	LimitPrice *float64         `json:"limitPrice,omitempty"`
}

// FillLeg is one consumed slice of a book level, in the order consumed.
type FillLeg struct {
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	LevelIndex int     `json:"levelIndex"`
}

// QueuePosition estimates where a resting limit order would sit in the book.
// Same-price levels count fully as ahead, a worst-case placement assumption.
type QueuePosition struct {
	LevelsAhead         int     `json:"levelsAhead"`
	QuantityAhead       float64 `json:"quantityAhead"`
	WouldCreateNewLevel bool    `json:"wouldCreateNewLevel"`
}

// Result is the canonical outcome of a single simulation.
//
// Which fields are populated depends on (Type, Status): pointer fields are
// nil when the underlying value is undefined, e.g. AvgFillPrice with zero
// fills or QueuePosition for a market order. The engine produces a Result
// once per call and keeps no history.
type Result struct {
	Venue    string           `json:"venue"`
	Side     orderbookv1.Side `json:"side"`
	Type     OrderType        `json:"orderType"`
	Status   Status           `json:"status"`
	Quantity float64          `json:"quantity"`

	// Reason is set for StatusFailed and StatusError.
	Reason string `json:"reason,omitempty"`

	FilledQuantity    float64   `json:"filledQuantity"`
	RemainingQuantity float64   `json:"remainingQuantity"`
	AvgFillPrice      *float64  `json:"avgFillPrice"`
	SlippageBps       *float64  `json:"slippageBps"`
	ImpactBps         *float64  `json:"impactBps"`
	Fills             []FillLeg `json:"fills"`

	// Limit-only fields.
	LimitPrice                 *float64       `json:"limitPrice,omitempty"`
	QueuePosition              *QueuePosition `json:"queuePosition,omitempty"`
	EstimatedTimeToFillSeconds *int64         `json:"estimatedTimeToFillSeconds,omitempty"`
}
