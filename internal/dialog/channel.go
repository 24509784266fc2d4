package dialog

import (
	"context"
	"sync"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Msg is one tagged payload sent to the reviewer.
type Msg struct {
	Tag     string
	Payload any
}

// Channel is the host side of a review conversation. Implementations
// decide the transport; the session only sees events and messages.
type Channel interface {
	// Next blocks for the reviewer's next event. ok is false once the
	// channel is closed or the context is done; the session treats
	// that as a rejection.
	Next(ctx context.Context) (Event, bool)

	// Send delivers a tagged payload to the reviewer.
	Send(ctx context.Context, tag string, payload any) error

	// Close tears the channel down. Safe to call more than once.
	Close()
}

// Opener creates review channels. The kind names the review surface
// (e.g. "tx-review") and the payload seeds the reviewer's first view.
type Opener interface {
	Open(ctx context.Context, kind string, payload any) (Channel, error)
}

// Pair wires an in-process host/reviewer channel pair. The host side
// satisfies Channel; the reviewer side is driven by whatever UI or
// test harness plays the reviewer.
func Pair() (*HostChannel, *ReviewerChannel) {
	shared := &pairState{
		events: make(chan Event),
		msgs:   make(chan Msg, 16),
		done:   make(chan struct{}),
	}
	return &HostChannel{pairState: shared}, &ReviewerChannel{pairState: shared}
}

type pairState struct {
	events    chan Event
	msgs      chan Msg
	done      chan struct{}
	closeOnce sync.Once
}

func (p *pairState) close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

// HostChannel is the orchestrator's end of an in-process pair.
type HostChannel struct {
	*pairState
}

// Next waits for the reviewer's next event.
func (c *HostChannel) Next(ctx context.Context) (Event, bool) {
	select {
	case ev := <-c.events:
		return ev, true
	case <-c.done:
		return Event{}, false
	case <-ctx.Done():
		return Event{}, false
	}
}

// Send delivers a tagged payload to the reviewer.
func (c *HostChannel) Send(ctx context.Context, tag string, payload any) error {
	select {
	case c.msgs <- Msg{Tag: tag, Payload: payload}:
		return nil
	case <-c.done:
		return signeterr.Wrap(signeterr.ErrGeneral, "review channel closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the conversation.
func (c *HostChannel) Close() {
	c.close()
}

// ReviewerChannel is the reviewer's end of an in-process pair.
type ReviewerChannel struct {
	*pairState
}

// Submit sends one event to the host. It reports false if the
// conversation already ended.
func (c *ReviewerChannel) Submit(ctx context.Context, ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Receive waits for the next message from the host. Messages already
// buffered are delivered even after the conversation ends.
func (c *ReviewerChannel) Receive(ctx context.Context) (Msg, bool) {
	select {
	case m := <-c.msgs:
		return m, true
	default:
	}

	select {
	case m := <-c.msgs:
		return m, true
	case <-c.done:
		return Msg{}, false
	case <-ctx.Done():
		return Msg{}, false
	}
}

// Close ends the conversation from the reviewer's side.
func (c *ReviewerChannel) Close() {
	c.close()
}
