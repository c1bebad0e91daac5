// Package snapshot keeps the latest normalized depth snapshot and feed
// status per venue, mirroring snapshots into Redis for other consumers.
package snapshot

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/redis"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

const redisKeyPrefix = "orderbook:"

// Store holds the latest snapshot per venue behind a RWMutex. Reads are
// served from memory; Redis is a best-effort mirror only.
type Store struct {
	mu       sync.RWMutex
	latest   map[string]orderbookv1.Snapshot
	statuses map[string]feedv1.Status

	logger      logger.Interface
	redisclient redis.Client
}

// NewStore creates an empty Store. The Redis client may be nil, in which
// case snapshots are kept in memory only.
func NewStore(redisclient redis.Client, log logger.Interface) *Store {
	return &Store{
		latest:      make(map[string]orderbookv1.Snapshot),
		statuses:    make(map[string]feedv1.Status),
		logger:      log,
		redisclient: redisclient,
	}
}

// Apply replaces the venue's latest snapshot and mirrors it to Redis.
// A Redis failure is logged but does not fail the apply; the in-memory
// copy is already current.
func (s *Store) Apply(ctx context.Context, snapshot orderbookv1.Snapshot) error {
	s.mu.Lock()
	s.latest[snapshot.Venue] = snapshot
	s.mu.Unlock()

	if s.redisclient == nil {
		return nil
	}

	buf, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.ErrorContext(ctx, errors.NewTracer("snapshot_marshal_error").Wrap(err), logger.Field{
			Key:   "venue",
			Value: snapshot.Venue,
		})
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if err := s.redisclient.Set(ctx, redisKeyPrefix+snapshot.Venue, buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "venue",
			Value: snapshot.Venue,
		}, logger.Field{
			Key:   "action",
			Value: "mirror snapshot",
		})
	}
	return nil
}

// Latest returns the venue's most recent snapshot. The boolean reports
// whether any snapshot has been applied for the venue yet.
func (s *Store) Latest(venue string) (orderbookv1.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.latest[venue]
	return snapshot, ok
}

// SetStatus records the venue's latest connection transition.
func (s *Store) SetStatus(status feedv1.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[status.Venue] = status
}

// Statuses returns the latest status of every known venue, sorted by venue
// for stable output.
func (s *Store) Statuses() []feedv1.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]feedv1.Status, 0, len(s.statuses))
	for _, status := range s.statuses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Venue < statuses[j].Venue
	})
	return statuses
}
