package wallet

import (
	"math"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/ethereum/go-ethereum/common"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Directory is the in-process wallet registry. Lookups take short-lived
// shared locks; nothing holds the directory across a review dialog.
type Directory struct {
	mu      sync.RWMutex
	wallets []Wallet
	current int
}

// NewDirectory creates a directory over the given wallets. The first
// wallet is the current one.
func NewDirectory(wallets ...Wallet) *Directory {
	return &Directory{wallets: wallets}
}

// Add appends a wallet to the directory.
func (d *Directory) Add(w Wallet) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wallets = append(d.wallets, w)
}

// Get returns the wallet with the given name.
func (d *Directory) Get(name string) (Wallet, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.wallets {
		if w.Name() == name {
			return w, true
		}
	}
	return nil, false
}

// Find returns the wallet and derivation path holding the given address.
func (d *Directory) Find(addr common.Address) (Wallet, string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.wallets {
		if path, ok := w.FindPath(addr); ok {
			return w, path, true
		}
	}
	return nil, "", false
}

// Current returns the currently selected wallet.
func (d *Directory) Current() (Wallet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.wallets) == 0 {
		return nil, signeterr.WithSuggestion(
			signeterr.ErrWalletNameNotFound,
			"no wallets configured; create one with: signet wallet create",
		)
	}
	return d.wallets[d.current], nil
}

// SetCurrent selects the wallet with the given name.
func (d *Directory) SetCurrent(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, w := range d.wallets {
		if w.Name() == name {
			d.current = i
			return nil
		}
	}
	return NotFoundByName(name, d.namesLocked())
}

// Names returns all wallet names in directory order.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.namesLocked()
}

func (d *Directory) namesLocked() []string {
	names := make([]string, len(d.wallets))
	for i, w := range d.wallets {
		names[i] = w.Name()
	}
	return names
}

// NotFoundByName builds the wallet-name lookup failure, attaching a
// closest-name suggestion when one is plausibly a typo.
func NotFoundByName(name string, known []string) error {
	err := signeterr.WithDetails(signeterr.ErrWalletNameNotFound, map[string]string{
		"name": name,
	})

	if suggestion := closestName(name, known); suggestion != "" {
		err = signeterr.WithSuggestion(err, "did you mean '"+suggestion+"'?")
	}
	return err
}

// NotFoundByAddress builds the address lookup failure.
func NotFoundByAddress(addr common.Address) error {
	return signeterr.WithDetails(signeterr.ErrWalletNotFound, map[string]string{
		"address": addr.Hex(),
	})
}

// closestName returns the known name nearest to the input, or "" when
// nothing is close enough to be a likely typo.
func closestName(input string, known []string) string {
	const maxDistance = 3

	minDist := math.MaxInt
	var best string
	for _, name := range known {
		dist := levenshtein.ComputeDistance(input, name)
		if dist < minDist {
			minDist = dist
			best = name
		}
	}

	if minDist > maxDistance {
		return ""
	}
	return best
}
