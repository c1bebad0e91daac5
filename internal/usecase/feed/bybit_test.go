package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBybit_SubscribeMessageMapsSymbol(t *testing.T) {
	adapter := NewBybit("BTC-USDT")

	messages := adapter.SubscribeMessages()
	require.Len(t, messages, 1)

	var payload struct {
		Op   string   `json:"op"`
		Args []string `json:"args"`
	}
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, "subscribe", payload.Op)
	assert.Equal(t, []string{"orderbook.50.BTCUSDT"}, payload.Args)
}

func TestBybit_ParseSnapshot(t *testing.T) {
	raw := []byte(`{
		"topic": "orderbook.50.BTCUSDT",
		"type": "snapshot",
		"ts": 1717243200123,
		"data": {
			"s": "BTCUSDT",
			"b": [["64999.5", "0.42"], ["64998.0", "1.10"]],
			"a": [["65000.0", "0.25"]]
		}
	}`)

	snapshot, ok, err := NewBybit("BTC-USDT").Parse(raw)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "bybit", snapshot.Venue)
	require.Len(t, snapshot.Bids, 2)
	assert.Equal(t, 64999.5, snapshot.Bids[0].Price)
	require.Len(t, snapshot.Asks, 1)
	assert.Equal(t, 0.25, snapshot.Asks[0].Quantity)
}

func TestBybit_ParseSkipsDeltasAndPongs(t *testing.T) {
	adapter := NewBybit("BTC-USDT")

	tests := []struct {
		name string
		raw  string
	}{
		{name: "delta", raw: `{"topic":"orderbook.50.BTCUSDT","type":"delta","data":{"b":[["64999.5","0"]],"a":[]}}`},
		{name: "pong", raw: `{"op":"pong","args":["1717243200123"]}`},
		{name: "subscribe ack", raw: `{"op":"subscribe","success":true}`},
		{name: "other topic", raw: `{"topic":"tickers.BTCUSDT","type":"snapshot","data":{}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := adapter.Parse([]byte(tc.raw))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBybit_PingMessage(t *testing.T) {
	assert.JSONEq(t, `{"op":"ping"}`, string(NewBybit("BTC-USDT").PingMessage()))
}
