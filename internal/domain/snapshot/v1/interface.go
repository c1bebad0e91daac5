package snapshotv1

import (
	"context"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// Store keeps the latest depth snapshot and connection status per venue.
//
// It is the process-level holder the HTTP layer reads from; the simulation
// engine itself never touches it and only ever receives snapshots by value.
type Store interface {
	Apply(ctx context.Context, snapshot orderbookv1.Snapshot) error
	Latest(venue string) (orderbookv1.Snapshot, bool)
	SetStatus(status feedv1.Status)
	Statuses() []feedv1.Status
}
