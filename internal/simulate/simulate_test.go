package simulate

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/signet/internal/chain/rpc"
	"github.com/mrz1836/signet/internal/tx"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

var (
	testFrom = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testTo   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func completeDraft() *tx.Request {
	to := testTo
	return &tx.Request{
		From:  testFrom,
		To:    &to,
		Value: big.NewInt(5),
		Gas:   21000,
	}
}

func TestFromDraft(t *testing.T) {
	t.Parallel()

	req, reason, err := FromDraft(completeDraft())
	require.NoError(t, err)
	assert.Empty(t, reason)
	assert.Equal(t, testFrom, req.From)
	assert.Equal(t, testTo, req.To)
	assert.Equal(t, uint64(21000), req.GasLimit)
}

func TestFromDraftIncomplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*tx.Request)
		wantReason SkipReason
	}{
		{
			name:       "missing sender",
			mutate:     func(r *tx.Request) { r.From = common.Address{} },
			wantReason: SkipNoSender,
		},
		{
			name:       "missing recipient",
			mutate:     func(r *tx.Request) { r.To = nil },
			wantReason: SkipNoRecipient,
		},
		{
			name:       "missing gas limit",
			mutate:     func(r *tx.Request) { r.Gas = 0 },
			wantReason: SkipNoGasLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draft := completeDraft()
			tt.mutate(draft)

			req, reason, err := FromDraft(draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, signeterr.ErrCannotSimulate)
			assert.Nil(t, req)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

// fakeCaller scripts EthCall responses.
type fakeCaller struct {
	ret   []byte
	err   error
	calls int
	last  rpc.CallMsg
}

func (f *fakeCaller) EthCall(_ context.Context, msg rpc.CallMsg) ([]byte, error) {
	f.calls++
	f.last = msg
	return f.ret, f.err
}

func TestCallEngineSimulateSuccess(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{ret: []byte{0x01}}
	engine := NewCallEngine(caller)

	req, _, err := FromDraft(completeDraft())
	require.NoError(t, err)

	result, err := engine.Simulate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []byte{0x01}, result.ReturnData)

	assert.Equal(t, testFrom.Hex(), caller.last.From)
	assert.Equal(t, testTo.Hex(), caller.last.To)
	assert.Equal(t, uint64(21000), caller.last.Gas)
}

func TestCallEngineSimulateRevert(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{err: &rpc.Error{Code: 3, Message: "execution reverted"}}
	engine := NewCallEngine(caller)

	req, _, err := FromDraft(completeDraft())
	require.NoError(t, err)

	result, err := engine.Simulate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "execution reverted", result.Error)
}

func TestCallEngineSimulateTransportError(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{err: signeterr.Wrap(rpc.ErrRPCRequest, "dial failed")}
	engine := NewCallEngine(caller)

	req, _, err := FromDraft(completeDraft())
	require.NoError(t, err)

	_, err = engine.Simulate(context.Background(), req)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("completes on a full draft", func(t *testing.T) {
		t.Parallel()

		engine := NewCallEngine(&fakeCaller{ret: []byte{}})
		outcome := Run(context.Background(), engine, completeDraft())
		require.True(t, outcome.Ran)
		assert.True(t, outcome.Result.Success)
	})

	t.Run("skips an incomplete draft without touching the engine", func(t *testing.T) {
		t.Parallel()

		caller := &fakeCaller{}
		draft := completeDraft()
		draft.To = nil

		outcome := Run(context.Background(), NewCallEngine(caller), draft)
		assert.False(t, outcome.Ran)
		assert.Equal(t, SkipNoRecipient, outcome.Reason)
		assert.Zero(t, caller.calls)
	})

	t.Run("folds engine failure into a skip", func(t *testing.T) {
		t.Parallel()

		caller := &fakeCaller{err: signeterr.Wrap(rpc.ErrRPCRequest, "dial failed")}
		outcome := Run(context.Background(), NewCallEngine(caller), completeDraft())
		assert.False(t, outcome.Ran)
		assert.Equal(t, SkipEngineFailure, outcome.Reason)
	})
}
