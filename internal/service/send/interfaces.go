package send

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mrz1836/signet/internal/chain/rpc"
	"github.com/mrz1836/signet/internal/wallet"
)

// NetworkInfo describes the chain a send targets.
type NetworkInfo interface {
	Name() string
	ChainID() uint64
	IsDev() bool
}

// NetworkProvider is the node surface a send needs.
type NetworkProvider interface {
	EstimateGas(ctx context.Context, msg rpc.CallMsg) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	Nonce(ctx context.Context, address string) (uint64, error)
	EthCall(ctx context.Context, msg rpc.CallMsg) ([]byte, error)
	SendRawTransaction(ctx context.Context, signedTx []byte) (string, error)
}

// WalletDirectory resolves wallets by name or address.
type WalletDirectory interface {
	Get(name string) (wallet.Wallet, bool)
	Find(addr common.Address) (wallet.Wallet, string, bool)
	Current() (wallet.Wallet, error)
	Names() []string
}

// SettingsProvider exposes the runtime settings a send reads.
type SettingsProvider interface {
	FastMode() bool
}

// LogWriter provides logging operations.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}
