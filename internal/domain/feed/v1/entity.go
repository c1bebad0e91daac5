package feedv1

import "time"

// State represents the coarse connection state of a venue feed.
type State string

const (
	// StateConnecting means the dial is in progress.
	StateConnecting State = "connecting"
	// StateConnected means the depth channel is live.
	StateConnected State = "connected"
	// StateDisconnected means the connection is down and a reconnect is pending.
	StateDisconnected State = "disconnected"
	// StateError means the last attempt ended with an error.
	StateError State = "error"
)

// Status is a connection-status transition for one venue.
type Status struct {
	Venue     string    `json:"venue"`
	State     State     `json:"state"`
	LastError string    `json:"lastError,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}
