package feed

import (
	"encoding/json"
	"strings"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

const (
	bybitVenue = "bybit"
	bybitURL   = "wss://stream.bybit.com/v5/public/linear"

	bybitTopicPrefix = "orderbook."
)

// Bybit subscribes to the orderbook.50 topic of the bybit linear public
// stream. Only full snapshot messages are consumed; delta messages are
// skipped rather than applied.
type Bybit struct {
	symbol string
}

// NewBybit creates an adapter for the given instrument. The canonical
// "BTC-USDT" form is converted to bybit's "BTCUSDT".
func NewBybit(symbol string) *Bybit {
	return &Bybit{symbol: strings.ReplaceAll(symbol, "-", "")}
}

// Venue implements Adapter.
func (b *Bybit) Venue() string { return bybitVenue }

// URL implements Adapter.
func (b *Bybit) URL() string { return bybitURL }

// SubscribeMessages implements Adapter.
func (b *Bybit) SubscribeMessages() [][]byte {
	payload, _ := json.Marshal(map[string]any{
		"op":   "subscribe",
		"args": []string{bybitTopicPrefix + "50." + b.symbol},
	})
	return [][]byte{payload}
}

// PingMessage implements Adapter.
func (b *Bybit) PingMessage() []byte {
	payload, _ := json.Marshal(map[string]string{"op": "ping"})
	return payload
}

type bybitMessage struct {
	Op    string `json:"op"`
	Topic string `json:"topic"`
	Type  string `json:"type"`
	Data  struct {
		Bids [][]string `json:"b"`
		Asks [][]string `json:"a"`
	} `json:"data"`
}

// Parse implements Adapter.
func (b *Bybit) Parse(raw []byte) (orderbookv1.Snapshot, bool, error) {
	var msg bybitMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return orderbookv1.Snapshot{}, false, errors.NewTracer(string(errors.FeedParseError)).Wrap(err)
	}

	if msg.Op == "pong" || !strings.HasPrefix(msg.Topic, bybitTopicPrefix) {
		return orderbookv1.Snapshot{}, false, nil
	}
	if msg.Type != "snapshot" {
		return orderbookv1.Snapshot{}, false, nil
	}

	bids, err := levelsFromStrings(msg.Data.Bids)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}
	asks, err := levelsFromStrings(msg.Data.Asks)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}

	return buildSnapshot(bybitVenue, bids, asks), true, nil
}
