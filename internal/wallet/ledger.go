package wallet

import (
	"github.com/ethereum/go-ethereum/common"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// LedgerWallet is a directory entry for a hardware-backed wallet. It can
// resolve addresses for review and simulation, but signing happens on
// the device and is not implemented here.
type LedgerWallet struct {
	name    string
	entries []hdEntry
	current int
}

// NewLedgerWallet creates a ledger directory entry from known
// (path, address) pairs previously read off the device.
func NewLedgerWallet(name string, paths []string, addrs []common.Address) (*LedgerWallet, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if len(paths) == 0 || len(paths) != len(addrs) {
		return nil, signeterr.WithSuggestion(signeterr.ErrInvalidInput, "paths and addresses must be non-empty and match")
	}

	w := &LedgerWallet{name: name}
	for i, p := range paths {
		w.entries = append(w.entries, hdEntry{path: p, addr: addrs[i]})
	}
	return w, nil
}

// Name returns the wallet identifier.
func (w *LedgerWallet) Name() string { return w.name }

// Kind returns KindLedger.
func (w *LedgerWallet) Kind() Kind { return KindLedger }

// IsDev always reports false; hardware wallets guard real funds.
func (w *LedgerWallet) IsDev() bool { return false }

// CurrentPath returns the derivation path of the active address.
func (w *LedgerWallet) CurrentPath() string {
	return w.entries[w.current].path
}

// ResolveAddress returns the known address at the given path.
func (w *LedgerWallet) ResolveAddress(path string) (common.Address, error) {
	for _, e := range w.entries {
		if e.path == path {
			return e.addr, nil
		}
	}
	return common.Address{}, signeterr.WithDetails(signeterr.ErrNotFound, map[string]string{
		"path": path,
	})
}

// FindPath returns the path holding the given address.
func (w *LedgerWallet) FindPath(addr common.Address) (string, bool) {
	for _, e := range w.entries {
		if e.addr == addr {
			return e.path, true
		}
	}
	return "", false
}

// BuildSigner is not supported; signing happens on the device.
func (w *LedgerWallet) BuildSigner(uint64, string) (*Signer, error) {
	return nil, signeterr.WithSuggestion(
		signeterr.ErrNotSupported,
		"ledger signing requires the device transport, which is not wired in this build",
	)
}
