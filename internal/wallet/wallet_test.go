package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "main"},
		{name: "with separators", input: "cold-storage_2"},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces", input: "my wallet", wantErr: true},
		{name: "too long", input: string(make([]byte, 65)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"plaintext", "hd", "ledger"} {
		k, ok := ParseKind(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, k.String())
	}

	_, ok := ParseKind("vault")
	assert.False(t, ok)
}

func TestKindRequiresDeviceConfirmation(t *testing.T) {
	t.Parallel()

	assert.True(t, KindLedger.RequiresDeviceConfirmation())
	assert.False(t, KindHD.RequiresDeviceConfirmation())
	assert.False(t, KindPlaintext.RequiresDeviceConfirmation())
}

func TestPlaintextWallet(t *testing.T) {
	t.Parallel()

	w, err := NewPlaintextWallet("scratch", []string{"0x" + testPrivateKey})
	require.NoError(t, err)

	assert.True(t, w.IsDev())
	assert.Equal(t, "0", w.CurrentPath())

	addr, err := w.ResolveAddress("0")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), addr)

	_, err = w.ResolveAddress("7")
	assert.Error(t, err)

	s, err := w.BuildSigner(1, "0")
	require.NoError(t, err)
	assert.Equal(t, addr, s.Address())
}

func TestNewPlaintextWalletInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewPlaintextWallet("scratch", nil)
	assert.Error(t, err)

	_, err = NewPlaintextWallet("scratch", []string{"zz"})
	assert.Error(t, err)
}

func TestLedgerWallet(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	w, err := NewLedgerWallet("hardware", []string{"m/44'/60'/0'/0/0"}, []common.Address{addr})
	require.NoError(t, err)

	assert.False(t, w.IsDev())
	assert.Equal(t, KindLedger, w.Kind())

	path, ok := w.FindPath(addr)
	require.True(t, ok)
	assert.Equal(t, "m/44'/60'/0'/0/0", path)

	_, err = w.BuildSigner(1, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, signeterr.ErrNotSupported)
}
