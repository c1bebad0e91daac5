package feed

import (
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

const (
	deribitVenue = "deribit"
	deribitURL   = "wss://www.deribit.com/ws/api/v2"

	deribitChannelPrefix = "book."
	// 20 levels without deltas, pushed every 100ms.
	deribitChannelSuffix = ".none.20.100ms"
)

// Deribit subscribes to the book channel over the deribit JSON-RPC
// websocket. Heartbeat is a public/ping call with an incrementing id.
type Deribit struct {
	instrument string
	rpcID      atomic.Int64
}

// NewDeribit creates an adapter for the given instrument. The canonical
// "BTC-USDT" form maps to deribit's "BTC-PERPETUAL".
func NewDeribit(symbol string) *Deribit {
	base := symbol
	if i := strings.Index(symbol, "-"); i > 0 {
		base = symbol[:i]
	}
	return &Deribit{instrument: base + "-PERPETUAL"}
}

// Venue implements Adapter.
func (d *Deribit) Venue() string { return deribitVenue }

// URL implements Adapter.
func (d *Deribit) URL() string { return deribitURL }

// SubscribeMessages implements Adapter.
func (d *Deribit) SubscribeMessages() [][]byte {
	payload, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      d.rpcID.Add(1),
		"method":  "public/subscribe",
		"params": map[string]any{
			"channels": []string{deribitChannelPrefix + d.instrument + deribitChannelSuffix},
		},
	})
	return [][]byte{payload}
}

// PingMessage implements Adapter.
func (d *Deribit) PingMessage() []byte {
	payload, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      d.rpcID.Add(1),
		"method":  "public/ping",
		"params":  map[string]any{},
	})
	return payload
}

type deribitMessage struct {
	Method string `json:"method"`
	Params struct {
		Channel string `json:"channel"`
		Data    struct {
			Bids [][]float64 `json:"bids"`
			Asks [][]float64 `json:"asks"`
		} `json:"data"`
	} `json:"params"`
}

// Parse implements Adapter. RPC results, including pongs, yield ok=false.
func (d *Deribit) Parse(raw []byte) (orderbookv1.Snapshot, bool, error) {
	var msg deribitMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return orderbookv1.Snapshot{}, false, errors.NewTracer(string(errors.FeedParseError)).Wrap(err)
	}

	if msg.Method != "subscription" || !strings.HasPrefix(msg.Params.Channel, deribitChannelPrefix) {
		return orderbookv1.Snapshot{}, false, nil
	}

	bids, err := levelsFromNumbers(msg.Params.Data.Bids)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}
	asks, err := levelsFromNumbers(msg.Params.Data.Asks)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}

	return buildSnapshot(deribitVenue, bids, asks), true, nil
}
