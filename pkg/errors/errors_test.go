package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignetErrorError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *SignetError
		expected string
	}{
		{
			name:     "message only",
			err:      &SignetError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name: "message with details sorted",
			err: &SignetError{
				Message: "wallet not found",
				Details: map[string]string{
					"name":    "main",
					"address": "0xabc",
				},
			},
			expected: "wallet not found (address: 0xabc) (name: main)",
		},
		{
			name: "message with cause",
			err: &SignetError{
				Message: "broadcast failed",
				Cause:   errors.New("connection refused"),
			},
			expected: "broadcast failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSentinelIs(t *testing.T) {
	t.Parallel()

	wrapped := Wrap(ErrWalletNameNotFound, "building signer")
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, ErrWalletNameNotFound))
	assert.False(t, errors.Is(wrapped, ErrWalletNotFound))
}

func TestWithDetailsPreservesCode(t *testing.T) {
	t.Parallel()

	err := WithDetails(ErrWalletNotFound, map[string]string{
		"address": "0x1111111111111111111111111111111111111111",
	})
	require.Error(t, err)

	assert.Equal(t, "WALLET_NOT_FOUND", Code(err))
	assert.True(t, errors.Is(err, ErrWalletNotFound))
	assert.Contains(t, err.Error(), "0x1111111111111111111111111111111111111111")
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()

	err := WithSuggestion(ErrWalletNameNotFound, "did you mean 'main'?")
	require.Error(t, err)

	var se *SignetError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "did you mean 'main'?", se.Suggestion)
	assert.Equal(t, ExitNotFound, se.ExitCode)
}

func TestWrapNonSignetError(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("dial tcp: timeout")
	err := Wrap(base, "estimating gas")
	require.Error(t, err)

	assert.Equal(t, "GENERAL_ERROR", Code(err))
	assert.True(t, errors.Is(err, base))
	assert.Contains(t, err.Error(), "estimating gas")
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, Wrap(nil, "context"))
	require.NoError(t, WithDetails(nil, nil))
	require.NoError(t, WithSuggestion(nil, "hint"))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), expected: ExitGeneral},
		{name: "rejected", err: ErrTxReviewRejected, expected: ExitRejected},
		{name: "not found (wrapped)", err: Wrap(ErrWalletNameNotFound, "send"), expected: ExitNotFound},
		{name: "invalid input", err: ErrInvalidValue, expected: ExitInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}
