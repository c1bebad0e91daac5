// Package feed ingests venue depth-of-book websocket channels and turns
// them into normalized snapshots. One Client per venue wraps a venue
// Adapter with the shared connection lifecycle: dial, subscribe, heartbeat,
// read loop, fixed-delay reconnect.
package feed

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

const (
	defaultReconnectDelay = 3 * time.Second
	defaultPingInterval   = 20 * time.Second
	defaultReadTimeout    = 60 * time.Second
	defaultWriteTimeout   = 10 * time.Second

	maxMessageBytes = 5 * 1024 * 1024
)

// Adapter is the venue-specific half of a feed: endpoint, subscription and
// heartbeat payloads, and depth-message parsing. Parse returns ok=false for
// messages that are valid but carry no book update (acks, pongs, deltas).
type Adapter interface {
	Venue() string
	URL() string
	SubscribeMessages() [][]byte
	PingMessage() []byte
	Parse(raw []byte) (orderbookv1.Snapshot, bool, error)
}

// Client runs one venue subscription. It implements feedv1.Feed.
type Client struct {
	adapter Adapter
	logger  logger.Interface

	reconnectDelay time.Duration
	pingInterval   time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration

	updates  chan orderbookv1.Snapshot
	statuses chan feedv1.Status
}

// NewClient wraps a venue adapter with the shared connection lifecycle.
func NewClient(adapter Adapter, log logger.Interface) *Client {
	return &Client{
		adapter:        adapter,
		logger:         log,
		reconnectDelay: defaultReconnectDelay,
		pingInterval:   defaultPingInterval,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		updates:        make(chan orderbookv1.Snapshot, 64),
		statuses:       make(chan feedv1.Status, 16),
	}
}

// Venue returns the adapter's venue name.
func (c *Client) Venue() string {
	return c.adapter.Venue()
}

// Updates returns the normalized snapshot stream.
func (c *Client) Updates() <-chan orderbookv1.Snapshot {
	return c.updates
}

// Statuses returns the connection transition stream.
func (c *Client) Statuses() <-chan feedv1.Status {
	return c.statuses
}

// Run drives the connect/read/reconnect loop until ctx is cancelled, then
// closes both output channels.
func (c *Client) Run(ctx context.Context) {
	defer close(c.updates)
	defer close(c.statuses)

	for {
		c.publishStatus(feedv1.StateConnecting, nil)

		err := c.session(ctx)
		if ctx.Err() != nil {
			c.publishStatus(feedv1.StateDisconnected, nil)
			return
		}

		if err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{Key: "venue", Value: c.adapter.Venue()})
			c.publishStatus(feedv1.StateError, err)
		} else {
			c.publishStatus(feedv1.StateDisconnected, nil)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectDelay):
		}
	}
}

// session runs one connection from dial to first read failure.
func (c *Client) session(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.adapter.URL(), nil)
	if err != nil {
		return errors.NewTracer(string(errors.FeedConnectionError)).Wrap(err)
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageBytes)

	for _, payload := range c.adapter.SubscribeMessages() {
		conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return errors.NewTracer(string(errors.FeedSubscribeError)).Wrap(err)
		}
	}

	c.publishStatus(feedv1.StateConnected, nil)
	c.logger.InfoContext(ctx, "depth channel connected", logger.Field{Key: "venue", Value: c.adapter.Venue()})

	// Unblocks the read loop on cancellation or session end.
	sessionDone := make(chan struct{})
	defer close(sessionDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-sessionDone:
		}
	}()

	go c.heartbeat(ctx, conn, sessionDone)

	for {
		conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return errors.NewTracer(string(errors.FeedConnectionError)).Wrap(err)
		}

		snapshot, ok, err := c.adapter.Parse(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "dropping unparseable depth message",
				logger.Field{Key: "venue", Value: c.adapter.Venue()},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		if !ok {
			continue
		}

		select {
		case c.updates <- snapshot:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Client) heartbeat(ctx context.Context, conn *websocket.Conn, sessionDone <-chan struct{}) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sessionDone:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, c.adapter.PingMessage()); err != nil {
				return
			}
		}
	}
}

func (c *Client) publishStatus(state feedv1.State, cause error) {
	status := feedv1.Status{
		Venue:     c.adapter.Venue(),
		State:     state,
		ChangedAt: time.Now().UTC(),
	}
	if cause != nil {
		status.LastError = cause.Error()
	}

	// Status is advisory; drop rather than block the session loop.
	select {
	case c.statuses <- status:
	default:
	}
}
