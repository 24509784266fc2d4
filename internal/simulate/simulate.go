// Package simulate dry-runs transaction drafts so a reviewer can see
// the expected effect before approving. Simulation is advisory: a draft
// that cannot be simulated, or an engine failure, never blocks review.
package simulate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mrz1836/signet/internal/tx"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Request is a fully-specified call ready for simulation. Unlike a
// draft, every field required by the engine is present.
type Request struct {
	From     common.Address
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
}

// SkipReason explains why a simulation did not run.
type SkipReason string

// Skip reasons.
const (
	// SkipNoSender: the draft has no resolved sender address.
	SkipNoSender SkipReason = "no-sender"
	// SkipNoRecipient: the draft has no recipient (e.g. contract deploy).
	SkipNoRecipient SkipReason = "no-recipient"
	// SkipNoGasLimit: gas estimation has not produced a limit yet.
	SkipNoGasLimit SkipReason = "no-gas-limit"
	// SkipEngineFailure: the engine errored; the draft itself was fine.
	SkipEngineFailure SkipReason = "engine-failure"
)

// Outcome is the result of asking for a simulation. Exactly one of the
// two shapes holds: Ran with a Result, or skipped with a Reason.
type Outcome struct {
	Ran    bool
	Reason SkipReason
	Result *Result
}

// Skipped builds a not-run outcome.
func Skipped(reason SkipReason) Outcome {
	return Outcome{Reason: reason}
}

// Completed builds a ran outcome.
func Completed(result *Result) Outcome {
	return Outcome{Ran: true, Result: result}
}

// Result is what the engine observed during the dry run.
type Result struct {
	// Success reports whether the call completed without reverting.
	Success bool `json:"success"`
	// ReturnData is the call's return or revert data.
	ReturnData []byte `json:"returnData,omitempty"`
	// Error carries the node's failure message when Success is false.
	Error string `json:"error,omitempty"`
}

// FromDraft translates a transaction draft into a simulation request.
// Drafts missing a sender, recipient, or gas limit cannot be simulated.
func FromDraft(draft *tx.Request) (*Request, SkipReason, error) {
	zero := common.Address{}

	switch {
	case draft.From == zero:
		return nil, SkipNoSender, cannotSimulate(SkipNoSender)
	case draft.To == nil:
		return nil, SkipNoRecipient, cannotSimulate(SkipNoRecipient)
	case draft.Gas == 0:
		return nil, SkipNoGasLimit, cannotSimulate(SkipNoGasLimit)
	}

	return &Request{
		From:     draft.From,
		To:       *draft.To,
		Value:    draft.Value,
		Data:     draft.Data,
		GasLimit: draft.Gas,
	}, "", nil
}

func cannotSimulate(reason SkipReason) error {
	return signeterr.WithDetails(signeterr.ErrCannotSimulate, map[string]string{
		"reason": string(reason),
	})
}
