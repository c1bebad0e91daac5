package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
	logger_mock "github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger/mock"
	redis_mock "github.com/ANUSHKASINGH809/orderbook-simulator/pkg/redis/mock"
)

func testStoreSnapshot(venue string) orderbookv1.Snapshot {
	return orderbookv1.Snapshot{
		Venue:      venue,
		Bids:       []orderbookv1.PriceLevel{{Price: 99, Quantity: 1}},
		Asks:       []orderbookv1.PriceLevel{{Price: 100, Quantity: 2}},
		ObservedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_ApplyAndLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisClient := redis_mock.NewMockClient(ctrl)
	redisClient.EXPECT().
		Set(gomock.Any(), "orderbook:okx", gomock.Any(), time.Duration(0)).
		Return(nil)

	store := NewStore(redisClient, logger_mock.NewMockInterface(ctrl))

	err := store.Apply(context.Background(), testStoreSnapshot("okx"))
	require.NoError(t, err)

	snap, ok := store.Latest("okx")
	require.True(t, ok)
	assert.Equal(t, "okx", snap.Venue)
	assert.Equal(t, 99.0, snap.Bids[0].Price)

	_, ok = store.Latest("bybit")
	assert.False(t, ok)
}

func TestStore_ApplyReplacesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisClient := redis_mock.NewMockClient(ctrl)
	redisClient.EXPECT().
		Set(gomock.Any(), "orderbook:okx", gomock.Any(), time.Duration(0)).
		Return(nil).
		Times(2)

	store := NewStore(redisClient, logger_mock.NewMockInterface(ctrl))

	first := testStoreSnapshot("okx")
	require.NoError(t, store.Apply(context.Background(), first))

	second := testStoreSnapshot("okx")
	second.Bids[0].Price = 98
	require.NoError(t, store.Apply(context.Background(), second))

	snap, ok := store.Latest("okx")
	require.True(t, ok)
	assert.Equal(t, 98.0, snap.Bids[0].Price)
}

func TestStore_RedisFailureDoesNotFailApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisClient := redis_mock.NewMockClient(ctrl)
	redisClient.EXPECT().
		Set(gomock.Any(), "orderbook:okx", gomock.Any(), time.Duration(0)).
		Return(assert.AnError)

	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().ErrorContext(gomock.Any(), assert.AnError, gomock.Any(), gomock.Any())

	store := NewStore(redisClient, log)

	err := store.Apply(context.Background(), testStoreSnapshot("okx"))
	require.NoError(t, err)

	_, ok := store.Latest("okx")
	assert.True(t, ok)
}

func TestStore_NilRedisKeepsInMemoryOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewStore(nil, logger_mock.NewMockInterface(ctrl))

	require.NoError(t, store.Apply(context.Background(), testStoreSnapshot("deribit")))

	snap, ok := store.Latest("deribit")
	require.True(t, ok)
	assert.Equal(t, "deribit", snap.Venue)
}

func TestStore_Statuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewStore(nil, logger_mock.NewMockInterface(ctrl))

	assert.Empty(t, store.Statuses())

	store.SetStatus(feedv1.Status{Venue: "okx", State: feedv1.StateConnecting})
	store.SetStatus(feedv1.Status{Venue: "bybit", State: feedv1.StateConnected})
	store.SetStatus(feedv1.Status{Venue: "okx", State: feedv1.StateConnected})

	statuses := store.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, "bybit", statuses[0].Venue)
	assert.Equal(t, "okx", statuses[1].Venue)
	assert.Equal(t, feedv1.StateConnected, statuses[1].State)
}
