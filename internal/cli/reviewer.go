package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mrz1836/signet/internal/dialog"
	"github.com/mrz1836/signet/internal/service/send"
)

// terminalOpener opens interactive review sessions on the terminal.
// It plays the reviewer side of the dialog: commands typed by the user
// become review events.
type terminalOpener struct {
	in  io.Reader
	out io.Writer
}

func newTerminalOpener(in io.Reader, out io.Writer) *terminalOpener {
	return &terminalOpener{in: in, out: out}
}

// Open starts an in-process channel pair and drives the reviewer side
// from the terminal.
func (o *terminalOpener) Open(ctx context.Context, _ string, payload any) (dialog.Channel, error) {
	host, reviewer := dialog.Pair()
	go o.review(ctx, reviewer, payload)
	return host, nil
}

func (o *terminalOpener) review(ctx context.Context, r *dialog.ReviewerChannel, payload any) {
	o.printPayload("Pending transaction", payload)
	o.printf("Commands: accept, reject, simulate, set value <v>, set data <hex>\n")

	scanner := bufio.NewScanner(o.in)
	for {
		o.printf("review> ")
		if !scanner.Scan() {
			r.Close()
			return
		}

		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "accept", "a":
			if r.Submit(ctx, dialog.Event{Kind: dialog.EventAccept}) {
				o.drain(ctx, r)
			}
			return

		case "reject", "r", "quit", "q":
			r.Close()
			return

		case "simulate", "s":
			if !r.Submit(ctx, dialog.Event{Kind: dialog.EventSimulate}) {
				return
			}
			o.printNext(ctx, r)

		case "set":
			patch, ok := buildPatch(fields[1:])
			if !ok {
				o.printf("usage: set value <v> | set data <hex>\n")
				continue
			}
			if !r.Submit(ctx, dialog.Event{Kind: dialog.EventUpdate, Payload: patch}) {
				return
			}
			// The host answers with the refreshed draft, then the
			// re-run simulation.
			o.printNext(ctx, r)
			o.printNext(ctx, r)

		default:
			o.printf("unknown command %q\n", fields[0])
		}
	}
}

// drain prints any trailing messages (e.g. a device-confirmation
// notice) after the accept.
func (o *terminalOpener) drain(ctx context.Context, r *dialog.ReviewerChannel) {
	for {
		msg, ok := r.Receive(ctx)
		if !ok {
			return
		}
		if msg.Tag == send.TagCheckDevice {
			o.printf("Confirm the transaction on your hardware device.\n")
			continue
		}
		o.printPayload(msg.Tag, msg.Payload)
	}
}

func (o *terminalOpener) printNext(ctx context.Context, r *dialog.ReviewerChannel) {
	msg, ok := r.Receive(ctx)
	if !ok {
		return
	}
	o.printPayload(msg.Tag, msg.Payload)
}

func (o *terminalOpener) printPayload(label string, payload any) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		o.printf("%s: %v\n", label, payload)
		return
	}
	o.printf("%s:\n%s\n", label, raw)
}

func (o *terminalOpener) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

// buildPatch turns "set value <v>" or "set data <hex>" into an update
// payload.
func buildPatch(args []string) (json.RawMessage, bool) {
	if len(args) != 2 {
		return nil, false
	}

	switch args[0] {
	case "value", "data":
		raw, err := json.Marshal(map[string]string{args[0]: args[1]})
		if err != nil {
			return nil, false
		}
		return raw, true
	default:
		return nil, false
	}
}
