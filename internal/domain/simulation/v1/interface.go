package simulationv1

import (
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// Simulator runs a hypothetical order against a depth-of-book snapshot.
//
// Implementations must be pure: no internal state, no I/O, safe for
// concurrent use, and every call returns a Result instead of panicking.
type Simulator interface {
	Simulate(snapshot *orderbookv1.Snapshot, request Request) Result
}
