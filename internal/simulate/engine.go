package simulate

import (
	"context"
	"errors"

	"github.com/mrz1836/signet/internal/chain/rpc"
	"github.com/mrz1836/signet/internal/tx"
)

// Engine runs one simulation request.
type Engine interface {
	Simulate(ctx context.Context, req *Request) (*Result, error)
}

// caller is the provider surface the call engine needs.
type caller interface {
	EthCall(ctx context.Context, msg rpc.CallMsg) ([]byte, error)
}

// CallEngine simulates by dry-running the call against the node's
// latest state with eth_call.
type CallEngine struct {
	provider caller
}

// NewCallEngine creates an engine over the given provider.
func NewCallEngine(provider caller) *CallEngine {
	return &CallEngine{provider: provider}
}

// Simulate dry-runs the request. A revert is reported as an
// unsuccessful Result, not an error; only transport-level failures
// surface as errors.
func (e *CallEngine) Simulate(ctx context.Context, req *Request) (*Result, error) {
	msg := rpc.CallMsg{
		From:  req.From.Hex(),
		To:    req.To.Hex(),
		Gas:   req.GasLimit,
		Value: req.Value,
		Data:  req.Data,
	}

	ret, err := e.provider.EthCall(ctx, msg)
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) {
			// The node executed the call and it reverted.
			return &Result{
				Success: false,
				Error:   rpcErr.Message,
			}, nil
		}
		return nil, err
	}

	return &Result{
		Success:    true,
		ReturnData: ret,
	}, nil
}

// Run resolves a draft into a request and executes it, folding every
// failure mode into an Outcome.
func Run(ctx context.Context, engine Engine, draft *tx.Request) Outcome {
	req, reason, err := FromDraft(draft)
	if err != nil {
		return Skipped(reason)
	}

	result, err := engine.Simulate(ctx, req)
	if err != nil {
		return Skipped(SkipEngineFailure)
	}
	return Completed(result)
}
