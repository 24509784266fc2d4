// Package wallet provides the wallet directory: named signing wallets,
// address resolution, and signer construction.
package wallet

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Kind classifies how a wallet holds its keys.
type Kind string

// Wallet kinds.
const (
	// KindPlaintext holds raw private keys in memory. Development only.
	KindPlaintext Kind = "plaintext"
	// KindHD derives keys from a BIP39 mnemonic.
	KindHD Kind = "hd"
	// KindLedger delegates signing to a hardware device.
	KindLedger Kind = "ledger"
)

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// RequiresDeviceConfirmation reports whether dispatching a transaction
// needs an out-of-band confirmation on a hardware device.
func (k Kind) RequiresDeviceConfirmation() bool {
	return k == KindLedger
}

// ParseKind parses a wallet kind string.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPlaintext, KindHD, KindLedger:
		return Kind(s), true
	default:
		return "", false
	}
}

// Wallet is a named signing capability with one or more derived addresses.
type Wallet interface {
	// Name returns the unique wallet identifier.
	Name() string

	// Kind returns the wallet kind.
	Kind() Kind

	// IsDev reports whether this wallet holds development keys, making
	// it eligible for the fast-mode review bypass.
	IsDev() bool

	// CurrentPath returns the derivation path of the active address.
	CurrentPath() string

	// ResolveAddress returns the address at the given derivation path.
	ResolveAddress(path string) (common.Address, error)

	// FindPath returns the derivation path holding the given address.
	FindPath(addr common.Address) (string, bool)

	// BuildSigner produces a signing capability bound to a chain id and
	// derivation path.
	BuildSigner(chainID uint64, path string) (*Signer, error)
}

// walletNameRegex validates wallet names: alphanumeric + underscore + hyphen, 1-64 chars.
var walletNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ErrInvalidWalletName indicates the wallet name is invalid.
var ErrInvalidWalletName = signeterr.WithSuggestion(
	signeterr.ErrInvalidInput,
	"wallet name must be 1-64 alphanumeric characters, underscores, or hyphens",
)

// ValidateName checks if a wallet name is valid.
func ValidateName(name string) error {
	if !walletNameRegex.MatchString(name) {
		return ErrInvalidWalletName
	}
	return nil
}
