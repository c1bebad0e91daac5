package feed

import (
	"encoding/json"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

const (
	okxVenue = "okx"
	okxURL   = "wss://ws.okx.com:8443/ws/v5/public"

	okxDepthChannel = "books5"
)

// OKX subscribes to the books5 channel of the okx public websocket.
// Heartbeat is a bare text "ping"; the venue answers with a bare "pong".
type OKX struct {
	symbol string
}

// NewOKX creates an adapter for the given instrument, e.g. "BTC-USDT".
func NewOKX(symbol string) *OKX {
	return &OKX{symbol: symbol}
}

// Venue implements Adapter.
func (o *OKX) Venue() string { return okxVenue }

// URL implements Adapter.
func (o *OKX) URL() string { return okxURL }

// SubscribeMessages implements Adapter.
func (o *OKX) SubscribeMessages() [][]byte {
	payload, _ := json.Marshal(map[string]any{
		"op": "subscribe",
		"args": []map[string]string{
			{"channel": okxDepthChannel, "instId": o.symbol},
		},
	})
	return [][]byte{payload}
}

// PingMessage implements Adapter.
func (o *OKX) PingMessage() []byte {
	return []byte("ping")
}

type okxMessage struct {
	Arg struct {
		Channel string `json:"channel"`
		InstID  string `json:"instId"`
	} `json:"arg"`
	Data []struct {
		Bids [][]string `json:"bids"`
		Asks [][]string `json:"asks"`
	} `json:"data"`
}

// Parse implements Adapter. Acks, errors and other channels yield ok=false.
func (o *OKX) Parse(raw []byte) (orderbookv1.Snapshot, bool, error) {
	if string(raw) == "pong" {
		return orderbookv1.Snapshot{}, false, nil
	}

	var msg okxMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return orderbookv1.Snapshot{}, false, errors.NewTracer(string(errors.FeedParseError)).Wrap(err)
	}

	if msg.Arg.Channel != okxDepthChannel || len(msg.Data) == 0 {
		return orderbookv1.Snapshot{}, false, nil
	}

	bids, err := levelsFromStrings(msg.Data[0].Bids)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}
	asks, err := levelsFromStrings(msg.Data[0].Asks)
	if err != nil {
		return orderbookv1.Snapshot{}, false, err
	}

	return buildSnapshot(okxVenue, bids, asks), true, nil
}
