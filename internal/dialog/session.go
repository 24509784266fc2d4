package dialog

import (
	"context"
	"encoding/json"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Message tags sent to the reviewer.
const (
	// TagSimulation carries a completed or skipped simulation outcome.
	TagSimulation = "simulation"
	// TagUpdated carries the refreshed draft after a reviewer edit.
	TagUpdated = "updated"
)

// Decision is the terminal result of a review session.
type Decision int

// Session decisions.
const (
	Rejected Decision = iota
	Accepted
)

// State tracks where the session is in its lifecycle.
type State string

// Session states. AwaitingInput is the only state that consumes
// reviewer events; Accepted and Rejected are terminal.
const (
	StateAwaitingInput State = "awaiting-input"
	StateSimulating    State = "simulating"
	StateUpdating      State = "updating"
	StateAccepted      State = "accepted"
	StateRejected      State = "rejected"
)

// Handler supplies the domain actions a session needs. The session
// owns the conversation; the handler owns the draft.
type Handler interface {
	// Simulate dry-runs the current draft and returns the payload to
	// show the reviewer.
	Simulate(ctx context.Context) (any, error)

	// ApplyUpdate applies a reviewer patch to the draft and returns
	// the refreshed draft payload.
	ApplyUpdate(patch json.RawMessage) (any, error)
}

// logger is the subset of the file logger the session uses.
type logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// Session drives one review conversation to a decision.
type Session struct {
	ch      Channel
	handler Handler
	log     logger
	state   State
}

// NewSession creates a session over an open channel.
func NewSession(ch Channel, handler Handler, log logger) *Session {
	return &Session{
		ch:      ch,
		handler: handler,
		log:     log,
		state:   StateAwaitingInput,
	}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Run consumes reviewer events until the session reaches a terminal
// state. A closed channel, a cancelled context, an unrecognized event,
// or a bad patch all resolve to Rejected; only an explicit accept
// resolves to Accepted.
func (s *Session) Run(ctx context.Context) (Decision, error) {
	for {
		ev, ok := s.ch.Next(ctx)
		if !ok {
			s.log.Debug("review channel closed before accept")
			s.state = StateRejected
			return Rejected, signeterr.ErrTxReviewRejected
		}

		switch ev.Kind {
		case EventSimulate:
			s.state = StateSimulating
			s.simulate(ctx)
			s.state = StateAwaitingInput

		case EventUpdate:
			s.state = StateUpdating
			if err := s.update(ctx, ev.Payload); err != nil {
				s.state = StateRejected
				return Rejected, err
			}
			s.state = StateAwaitingInput

		case EventAccept:
			s.state = StateAccepted
			return Accepted, nil

		default:
			s.log.Debug("unrecognized review event, rejecting")
			s.state = StateRejected
			return Rejected, signeterr.ErrTxReviewRejected
		}
	}
}

// simulate runs the dry run and reports the outcome. Failures are
// advisory; the session keeps going either way.
func (s *Session) simulate(ctx context.Context) {
	payload, err := s.handler.Simulate(ctx)
	if err != nil {
		s.log.Error("simulation failed: %v", err)
		return
	}
	if err := s.ch.Send(ctx, TagSimulation, payload); err != nil {
		s.log.Error("sending simulation outcome: %v", err)
	}
}

// update applies a reviewer patch. A patch that cannot be applied ends
// the review: the reviewer was looking at a draft that no longer
// matches what they asked for. After a successful patch the draft is
// re-simulated so the reviewer always sees an outcome for the latest
// edit.
func (s *Session) update(ctx context.Context, patch json.RawMessage) error {
	payload, err := s.handler.ApplyUpdate(patch)
	if err != nil {
		s.log.Error("applying review update: %v", err)
		return signeterr.Wrap(signeterr.ErrTxReviewRejected, "review update failed")
	}
	if err := s.ch.Send(ctx, TagUpdated, payload); err != nil {
		s.log.Error("sending updated draft: %v", err)
	}
	s.simulate(ctx)
	return nil
}
