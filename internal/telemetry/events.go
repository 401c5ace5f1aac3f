// Package telemetry defines the typed event structs that flow over the
// WebSocket connection between gnssd and its clients. Every broadcast
// embeds Event, so clients can dispatch on the type field before decoding
// the rest.
package telemetry

import "time"

// EventType identifies the kind of WebSocket event.
type EventType string

const (
	EventHeartbeat EventType = "heartbeat"
	EventState     EventType = "state"
	EventLog       EventType = "log"
	EventLookup    EventType = "lookup"
)

// Event is the base envelope shared by every event type.
type Event struct {
	Type EventType `json:"type"`
	TS   string    `json:"ts"`
}

// NowTS returns the current UTC time as an RFC 3339 nano string, matching the
// timestamp format used across all events.
func NowTS() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Heartbeat is sent periodically so clients can detect connectivity and
// monitor daemon uptime.
type Heartbeat struct {
	Event
	State         string `json:"state"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Lookups       int64  `json:"lookups"`
}

// StateTransition is emitted when the daemon moves between operating states
// (BOOTING -> READY).
type StateTransition struct {
	Event
	From string `json:"from"`
	To   string `json:"to"`
}

// Log mirrors a daemon log line to connected clients.
type Log struct {
	Event
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Lookup is emitted for every resolution the API performs, so a watching
// client can observe traffic: which identifier kind was queried, the raw
// query text, the normalized result, and whether resolution succeeded.
type Lookup struct {
	Event
	Kind   string `json:"kind"` // "sv", "constellation", "cospar", "domes", "sbas"
	Query  string `json:"query"`
	Result string `json:"result"`
	OK     bool   `json:"ok"`
}
