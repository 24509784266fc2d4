package wallet

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Signer is a signing capability bound to one (chain id, key) pair.
// It is built at most once per orchestration and never shared.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewSigner wraps a private key for the given chain id.
func NewSigner(key *ecdsa.PrivateKey, chainID uint64) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).SetUint64(chainID),
	}
}

// Address returns the signer's address.
func (s *Signer) Address() common.Address {
	return s.address
}

// ChainID returns the chain id this signer is bound to.
func (s *Signer) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

// SignTx signs a transaction with the bound key using the latest
// signer scheme for the chain (EIP-155 for legacy transactions).
func (s *Signer) SignTx(unsigned *types.Transaction) (*types.Transaction, error) {
	signed, err := types.SignTx(unsigned, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, signeterr.Wrap(signeterr.ErrSignerFailed, "signing transaction")
	}
	return signed, nil
}
