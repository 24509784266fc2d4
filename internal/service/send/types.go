package send

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/mrz1836/signet/internal/wallet"
)

// ReviewKind names the review surface opened for a pending send.
const ReviewKind = "tx-review"

// Message tags sent to the reviewer outside the session loop.
const (
	// TagCheckDevice tells the reviewer to confirm on their hardware
	// device; sent after accept for device-backed wallets.
	TagCheckDevice = "check-device"
)

// PendingTx is the handle returned once a transaction is broadcast.
type PendingTx struct {
	Hash    string
	From    common.Address
	Nonce   uint64
	ChainID uint64
}

// WalletRef identifies the resolved signing wallet without exposing it.
type WalletRef struct {
	Name string
	Path string
	Kind wallet.Kind
}

// reviewPayload seeds the reviewer's first view of a pending send.
type reviewPayload struct {
	Request    any    `json:"request"`
	ChainID    uint64 `json:"chainId"`
	WalletType string `json:"walletType"`
}
