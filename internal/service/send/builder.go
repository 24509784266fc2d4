package send

import (
	"github.com/mrz1836/signet/internal/dialog"
	"github.com/mrz1836/signet/internal/metrics"
	"github.com/mrz1836/signet/internal/tx"
	"github.com/mrz1836/signet/internal/wallet"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Builder assembles one Send. SetRequest must run before Build: wallet
// resolution happens at intake, before any network traffic, so a bad
// sender fails fast.
type Builder struct {
	wallets  WalletDirectory
	settings SettingsProvider
	opener   dialog.Opener
	logger   LogWriter
	metrics  *metrics.Metrics

	network  NetworkInfo
	provider NetworkProvider

	draft      *tx.Request
	wallet     wallet.Wallet
	walletPath string
}

// SetRequest resolves the signing wallet and populates the draft from
// the raw parameters. An explicit from-address must belong to a known
// wallet; with no from-address the current wallet signs.
func (b *Builder) SetRequest(params *tx.RawParams) error {
	draft := &tx.Request{}

	if params.From != "" {
		addr, err := tx.ParseAddress(params.From)
		if err != nil {
			return err
		}

		w, path, ok := b.wallets.Find(addr)
		if !ok {
			return wallet.NotFoundByAddress(addr)
		}
		b.wallet, b.walletPath = w, path
		draft.From = addr
	} else {
		w, err := b.wallets.Current()
		if err != nil {
			return err
		}

		path := w.CurrentPath()
		addr, err := w.ResolveAddress(path)
		if err != nil {
			return err
		}
		b.wallet, b.walletPath = w, path
		draft.From = addr
	}

	if params.To != "" {
		to, err := tx.ParseAddress(params.To)
		if err != nil {
			return err
		}
		draft.To = &to
	}

	if params.Value != "" {
		value, err := tx.ParseNumeric(params.Value)
		if err != nil {
			return err
		}
		draft.Value = value
	}

	if params.Data != "" {
		data, err := tx.ParseHexBytes(params.Data)
		if err != nil {
			return err
		}
		draft.Data = data
	}

	b.draft = draft
	return nil
}

// Build finalizes the Send. It fails if no request was set.
func (b *Builder) Build() (*Send, error) {
	if b.draft == nil {
		return nil, signeterr.Wrap(signeterr.ErrInvalidInput, "no transaction request set")
	}

	return &Send{
		draft:      b.draft,
		wallet:     b.wallet,
		walletPath: b.walletPath,
		wallets:    b.wallets,
		network:    b.network,
		provider:   b.provider,
		settings:   b.settings,
		opener:     b.opener,
		logger:     b.logger,
		metrics:    b.metrics,
	}, nil
}
