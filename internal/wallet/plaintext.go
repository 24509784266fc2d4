package wallet

import (
	"crypto/ecdsa"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// PlaintextWallet holds raw private keys in memory. It is always a dev
// wallet; real funds never belong behind plaintext keys.
type PlaintextWallet struct {
	name    string
	keys    []*ecdsa.PrivateKey
	addrs   []common.Address
	current int
}

// NewPlaintextWallet creates a wallet from hex-encoded private keys.
func NewPlaintextWallet(name string, hexKeys []string) (*PlaintextWallet, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if len(hexKeys) == 0 {
		return nil, signeterr.WithSuggestion(signeterr.ErrInvalidInput, "at least one private key is required")
	}

	w := &PlaintextWallet{name: name}
	for _, hk := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(hk, "0x"))
		if err != nil {
			return nil, signeterr.Wrap(signeterr.ErrInvalidInput, "parsing private key")
		}
		w.keys = append(w.keys, key)
		w.addrs = append(w.addrs, crypto.PubkeyToAddress(key.PublicKey))
	}

	return w, nil
}

// Name returns the wallet identifier.
func (w *PlaintextWallet) Name() string { return w.name }

// Kind returns KindPlaintext.
func (w *PlaintextWallet) Kind() Kind { return KindPlaintext }

// IsDev always reports true for plaintext wallets.
func (w *PlaintextWallet) IsDev() bool { return true }

// CurrentPath returns the index of the active key as a path.
func (w *PlaintextWallet) CurrentPath() string {
	return strconv.Itoa(w.current)
}

// ResolveAddress returns the address at the given index path.
func (w *PlaintextWallet) ResolveAddress(path string) (common.Address, error) {
	i, err := w.index(path)
	if err != nil {
		return common.Address{}, err
	}
	return w.addrs[i], nil
}

// FindPath returns the index path holding the given address.
func (w *PlaintextWallet) FindPath(addr common.Address) (string, bool) {
	for i, a := range w.addrs {
		if a == addr {
			return strconv.Itoa(i), true
		}
	}
	return "", false
}

// BuildSigner produces a signer for the key at the index path.
func (w *PlaintextWallet) BuildSigner(chainID uint64, path string) (*Signer, error) {
	i, err := w.index(path)
	if err != nil {
		return nil, signeterr.Wrap(signeterr.ErrSignerFailed, "resolving key at %q", path)
	}
	return NewSigner(w.keys[i], chainID), nil
}

func (w *PlaintextWallet) index(path string) (int, error) {
	i, err := strconv.Atoi(path)
	if err != nil || i < 0 || i >= len(w.keys) {
		return 0, signeterr.WithDetails(signeterr.ErrInvalidInput, map[string]string{
			"path": path,
		})
	}
	return i, nil
}
