package feedv1

import (
	"context"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// Feed is a venue depth-of-book subscription.
//
// Run blocks until ctx is cancelled, reconnecting with a fixed delay after
// close or error. Normalized snapshots arrive on Updates and connection
// transitions on Statuses; both channels are closed when Run returns.
type Feed interface {
	Venue() string
	Run(ctx context.Context)
	Updates() <-chan orderbookv1.Snapshot
	Statuses() <-chan Status
}
