package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeribit_SubscribeMessageMapsInstrument(t *testing.T) {
	adapter := NewDeribit("BTC-USDT")

	messages := adapter.SubscribeMessages()
	require.Len(t, messages, 1)

	var payload struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int64  `json:"id"`
		Method  string `json:"method"`
		Params  struct {
			Channels []string `json:"channels"`
		} `json:"params"`
	}
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, "2.0", payload.JSONRPC)
	assert.Equal(t, "public/subscribe", payload.Method)
	assert.Equal(t, []string{"book.BTC-PERPETUAL.none.20.100ms"}, payload.Params.Channels)
}

func TestDeribit_PingIDsIncrement(t *testing.T) {
	adapter := NewDeribit("BTC-USDT")

	var first, second struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(adapter.PingMessage(), &first))
	require.NoError(t, json.Unmarshal(adapter.PingMessage(), &second))
	assert.Greater(t, second.ID, first.ID)
}

func TestDeribit_ParseBookPush(t *testing.T) {
	raw := []byte(`{
		"jsonrpc": "2.0",
		"method": "subscription",
		"params": {
			"channel": "book.BTC-PERPETUAL.none.20.100ms",
			"data": {
				"timestamp": 1717243200123,
				"instrument_name": "BTC-PERPETUAL",
				"bids": [[64999.5, 4200.0], [64998.0, 11000.0]],
				"asks": [[65000.0, 2500.0]]
			}
		}
	}`)

	snapshot, ok, err := NewDeribit("BTC-USDT").Parse(raw)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "deribit", snapshot.Venue)
	require.Len(t, snapshot.Bids, 2)
	assert.Equal(t, 64999.5, snapshot.Bids[0].Price)
	assert.Equal(t, 4200.0, snapshot.Bids[0].Quantity)
	require.Len(t, snapshot.Asks, 1)
}

func TestDeribit_ParseSkipsRPCResults(t *testing.T) {
	adapter := NewDeribit("BTC-USDT")

	tests := []struct {
		name string
		raw  string
	}{
		{name: "pong", raw: `{"jsonrpc":"2.0","id":7,"result":"pong"}`},
		{name: "subscribe result", raw: `{"jsonrpc":"2.0","id":1,"result":["book.BTC-PERPETUAL.none.20.100ms"]}`},
		{name: "other channel", raw: `{"jsonrpc":"2.0","method":"subscription","params":{"channel":"ticker.BTC-PERPETUAL.100ms","data":{}}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := adapter.Parse([]byte(tc.raw))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
