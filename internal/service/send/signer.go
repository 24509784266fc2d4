package send

import (
	"github.com/mrz1836/signet/internal/wallet"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// buildSigner builds the signer on first use and reuses it afterwards.
// The signer binds (wallet key, chain id) exactly once per send; review
// updates never change either. The wallet is looked up again here: it
// may have been removed from the directory since intake.
func (s *Send) buildSigner() (*wallet.Signer, error) {
	if s.signer != nil {
		return s.signer, nil
	}

	w, ok := s.wallets.Get(s.wallet.Name())
	if !ok {
		return nil, wallet.NotFoundByName(s.wallet.Name(), s.wallets.Names())
	}

	signer, err := w.BuildSigner(s.network.ChainID(), s.walletPath)
	if err != nil {
		return nil, signeterr.Wrap(err, "building signer for wallet %q", w.Name())
	}

	s.signer = signer
	return s.signer, nil
}
