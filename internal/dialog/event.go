// Package dialog runs the human review loop for a pending transaction.
// A session owns one channel to a reviewer and drives a small state
// machine over the events the reviewer sends back.
package dialog

import (
	"encoding/json"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// EventKind identifies what the reviewer asked for.
type EventKind string

// Reviewer event kinds. Anything else is EventUnknown and terminates
// the review as a rejection.
const (
	EventSimulate EventKind = "simulate"
	EventAccept   EventKind = "accept"
	EventUpdate   EventKind = "update"
	EventUnknown  EventKind = ""
)

// Event is one message from the reviewer. Payload carries the
// kind-specific body (e.g. the patch for an update).
type Event struct {
	Kind    EventKind
	Payload json.RawMessage
}

// eventWire is the JSON shape events arrive in.
type eventWire struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ParseEvent decodes a reviewer event. Unrecognized kinds parse
// successfully as EventUnknown; the session decides what that means.
func ParseEvent(raw []byte) (Event, error) {
	var w eventWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Event{}, signeterr.Wrap(signeterr.ErrInvalidInput, "parsing review event")
	}

	switch EventKind(w.Event) {
	case EventSimulate, EventAccept, EventUpdate:
		return Event{Kind: EventKind(w.Event), Payload: w.Payload}, nil
	default:
		return Event{Kind: EventUnknown, Payload: w.Payload}, nil
	}
}
