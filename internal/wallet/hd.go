package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// defaultHDBasePath is the BIP44 external chain for Ethereum.
const defaultHDBasePath = "m/44'/60'/0'/0"

// ErrInvalidMnemonic indicates the mnemonic phrase failed BIP39 validation.
var ErrInvalidMnemonic = &signeterr.SignetError{
	Code:     "INVALID_MNEMONIC",
	Message:  "invalid mnemonic phrase",
	ExitCode: signeterr.ExitInput,
}

// HDWallet derives keys from a BIP39 mnemonic along BIP44 paths.
type HDWallet struct {
	name    string
	master  *bip32.Key
	entries []hdEntry
	current int
	dev     bool
}

type hdEntry struct {
	path string
	addr common.Address
}

// NewHDWallet creates an HD wallet and derives count addresses along the
// default Ethereum path. Dev wallets (e.g. seeded with a well-known test
// mnemonic) are eligible for the fast-mode bypass.
func NewHDWallet(name, mnemonic, passphrase string, count int, dev bool) (*HDWallet, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	if count <= 0 {
		count = 1
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, signeterr.Wrap(err, "deriving master key")
	}

	w := &HDWallet{
		name:   name,
		master: master,
		dev:    dev,
	}

	for i := 0; i < count; i++ {
		path := fmt.Sprintf("%s/%d", defaultHDBasePath, i)
		key, keyErr := w.deriveKey(path)
		if keyErr != nil {
			return nil, keyErr
		}
		w.entries = append(w.entries, hdEntry{
			path: path,
			addr: crypto.PubkeyToAddress(key.PublicKey),
		})
	}

	return w, nil
}

// Name returns the wallet identifier.
func (w *HDWallet) Name() string { return w.name }

// Kind returns KindHD.
func (w *HDWallet) Kind() Kind { return KindHD }

// IsDev reports whether this wallet holds development keys.
func (w *HDWallet) IsDev() bool { return w.dev }

// CurrentPath returns the derivation path of the active address.
func (w *HDWallet) CurrentPath() string {
	return w.entries[w.current].path
}

// SetCurrentIndex selects the active address by derivation index.
func (w *HDWallet) SetCurrentIndex(i int) error {
	if i < 0 || i >= len(w.entries) {
		return signeterr.WithDetails(signeterr.ErrInvalidInput, map[string]string{
			"index": strconv.Itoa(i),
		})
	}
	w.current = i
	return nil
}

// ResolveAddress returns the address at the given derivation path.
func (w *HDWallet) ResolveAddress(path string) (common.Address, error) {
	for _, e := range w.entries {
		if e.path == path {
			return e.addr, nil
		}
	}

	// Paths outside the derived window are still resolvable.
	key, err := w.deriveKey(path)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// FindPath returns the derivation path holding the given address.
func (w *HDWallet) FindPath(addr common.Address) (string, bool) {
	for _, e := range w.entries {
		if e.addr == addr {
			return e.path, true
		}
	}
	return "", false
}

// BuildSigner produces a signer bound to the chain id and path.
func (w *HDWallet) BuildSigner(chainID uint64, path string) (*Signer, error) {
	key, err := w.deriveKey(path)
	if err != nil {
		return nil, signeterr.Wrap(signeterr.ErrSignerFailed, "deriving key at %s", path)
	}
	return NewSigner(key, chainID), nil
}

// deriveKey walks the BIP32 tree from the master key along the path.
func (w *HDWallet) deriveKey(path string) (*ecdsa.PrivateKey, error) {
	components, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	key := w.master
	for _, c := range components {
		key, err = key.NewChildKey(c)
		if err != nil {
			return nil, signeterr.Wrap(err, "deriving child key")
		}
	}

	priv, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, signeterr.Wrap(err, "converting derived key")
	}
	return priv, nil
}

// parseDerivationPath parses a BIP32 path like m/44'/60'/0'/0/0 into
// child indexes with the hardened bit applied.
func parseDerivationPath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, invalidPath(path)
	}

	components := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil || idx >= uint64(bip32.FirstHardenedChild) {
			return nil, invalidPath(path)
		}

		child := uint32(idx)
		if hardened {
			child += bip32.FirstHardenedChild
		}
		components = append(components, child)
	}

	return components, nil
}

func invalidPath(path string) error {
	return signeterr.WithDetails(signeterr.ErrInvalidInput, map[string]string{
		"path": path,
	})
}
