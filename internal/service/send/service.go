// Package send orchestrates a transaction from intake to broadcast:
// resolve the signing wallet, fill in gas, run the human review loop,
// then sign and submit.
package send

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/mrz1836/signet/internal/dialog"
	"github.com/mrz1836/signet/internal/metrics"
	"github.com/mrz1836/signet/internal/simulate"
	"github.com/mrz1836/signet/internal/tx"
	"github.com/mrz1836/signet/internal/wallet"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Service builds send orchestrations over shared dependencies.
type Service struct {
	wallets  WalletDirectory
	settings SettingsProvider
	opener   dialog.Opener
	logger   LogWriter
	metrics  *metrics.Metrics
}

// Config holds dependencies for the send service. Metrics is optional.
type Config struct {
	Wallets  WalletDirectory
	Settings SettingsProvider
	Opener   dialog.Opener
	Logger   LogWriter
	Metrics  *metrics.Metrics
}

// NewService creates a new send service.
func NewService(cfg *Config) *Service {
	return &Service{
		wallets:  cfg.Wallets,
		settings: cfg.Settings,
		opener:   cfg.Opener,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// NewSend resolves the request into a Send ready to finish. Wallet
// resolution failures surface here, before any network traffic.
func (s *Service) NewSend(network NetworkInfo, provider NetworkProvider, params *tx.RawParams) (*Send, error) {
	b := &Builder{
		wallets:  s.wallets,
		settings: s.settings,
		opener:   s.opener,
		logger:   s.logger,
		metrics:  s.metrics,
		network:  network,
		provider: provider,
	}
	if err := b.SetRequest(params); err != nil {
		return nil, err
	}
	return b.Build()
}

// Send is one transaction orchestration. It owns its draft exclusively
// from intake until broadcast and is consumed by Finish exactly once.
type Send struct {
	draft      *tx.Request
	wallet     wallet.Wallet
	walletPath string
	wallets    WalletDirectory

	network  NetworkInfo
	provider NetworkProvider
	settings SettingsProvider
	opener   dialog.Opener
	logger   LogWriter
	metrics  *metrics.Metrics

	signer *wallet.Signer
}

// WalletRef identifies the resolved signing wallet.
func (s *Send) WalletRef() WalletRef {
	return WalletRef{
		Name: s.wallet.Name(),
		Path: s.walletPath,
		Kind: s.wallet.Kind(),
	}
}

// Draft returns the current transaction draft.
func (s *Send) Draft() *tx.Request {
	return s.draft
}

// Finish drives the send to broadcast: estimate gas, review unless the
// fast path applies, then sign and submit.
func (s *Send) Finish(ctx context.Context) (*PendingTx, error) {
	s.estimateGas(ctx)

	if s.skipReview() {
		s.logger.Debug("fast mode: skipping review for dev wallet on dev network %q", s.network.Name())
		s.metrics.RecordReviewSkipped()
		return s.send(ctx)
	}
	return s.reviewAndSend(ctx)
}

// skipReview reports whether the review dialog can be bypassed. All
// three must hold: dev network, dev wallet, fast mode enabled.
func (s *Send) skipReview() bool {
	return s.network.IsDev() && s.wallet.IsDev() && s.settings.FastMode()
}

// reviewAndSend opens the review channel, runs the session to a
// decision, and broadcasts only on an explicit accept.
func (s *Send) reviewAndSend(ctx context.Context) (*PendingTx, error) {
	ch, err := s.opener.Open(ctx, ReviewKind, reviewPayload{
		Request:    s.draft,
		ChainID:    s.network.ChainID(),
		WalletType: s.wallet.Kind().String(),
	})
	if err != nil {
		return nil, signeterr.Wrap(err, "opening review channel")
	}
	defer ch.Close()

	session := dialog.NewSession(ch, s, s.logger)
	decision, err := session.Run(ctx)
	s.metrics.RecordReview(decision == dialog.Accepted)
	if err != nil {
		return nil, err
	}
	if decision != dialog.Accepted {
		return nil, signeterr.ErrTxReviewRejected
	}

	if s.wallet.Kind().RequiresDeviceConfirmation() {
		if sendErr := ch.Send(ctx, TagCheckDevice, nil); sendErr != nil {
			s.logger.Error("notifying device confirmation: %v", sendErr)
		}
	}

	return s.send(ctx)
}

// Simulate dry-runs the current draft for the reviewer. Every failure
// mode folds into the outcome; simulation never blocks the review.
func (s *Send) Simulate(ctx context.Context) (any, error) {
	engine := simulate.NewCallEngine(s.provider)
	outcome := simulate.Run(ctx, engine, s.draft)
	if outcome.Ran {
		s.metrics.RecordSimulation()
	} else {
		s.logger.Debug("simulation skipped: %s", outcome.Reason)
	}
	return outcome, nil
}

// ApplyUpdate applies a reviewer patch to the draft.
func (s *Send) ApplyUpdate(patch json.RawMessage) (any, error) {
	if err := s.draft.ApplyPatch(patch); err != nil {
		return nil, err
	}
	return s.draft, nil
}

// send fills the remaining chain fields, signs, and broadcasts. The
// broadcast is single-shot: a failure surfaces to the caller rather
// than risking double submission.
func (s *Send) send(ctx context.Context) (*PendingTx, error) {
	if s.draft.Nonce == nil {
		nonce, err := s.provider.Nonce(ctx, s.draft.From.Hex())
		if err != nil {
			return nil, signeterr.Wrap(err, "fetching nonce")
		}
		s.draft.Nonce = &nonce
	}

	if s.draft.GasPrice == nil {
		price, err := s.provider.GasPrice(ctx)
		if err != nil {
			return nil, signeterr.Wrap(err, "fetching gas price")
		}
		s.draft.GasPrice = price
	}

	signer, err := s.buildSigner()
	if err != nil {
		return nil, err
	}

	value := new(big.Int)
	if s.draft.Value != nil {
		value = s.draft.Value
	}

	unsigned := types.NewTx(&types.LegacyTx{
		Nonce:    *s.draft.Nonce,
		To:       s.draft.To,
		Value:    value,
		Gas:      s.draft.Gas,
		GasPrice: s.draft.GasPrice,
		Data:     s.draft.Data,
	})

	signed, err := signer.SignTx(unsigned)
	if err != nil {
		return nil, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, signeterr.Wrap(err, "encoding signed transaction")
	}

	hash, err := s.provider.SendRawTransaction(ctx, raw)
	if err != nil {
		return nil, signeterr.Wrap(err, "broadcasting transaction")
	}

	s.logger.Debug("transaction broadcast: %s (nonce %d)", hash, *s.draft.Nonce)
	s.metrics.RecordBroadcast()

	return &PendingTx{
		Hash:    hash,
		From:    s.draft.From,
		Nonce:   *s.draft.Nonce,
		ChainID: s.network.ChainID(),
	}, nil
}
