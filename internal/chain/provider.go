package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/mrz1836/signet/internal/chain/rpc"
	"github.com/mrz1836/signet/internal/metrics"
)

// Provider wraps a JSON-RPC client with rate limiting, retry, and call
// instrumentation for read-style calls. Broadcast is deliberately
// single-shot: retrying a raw transaction risks double submission, so
// that decision is left to the caller.
type Provider struct {
	rpc     *rpc.Client
	limiter *RateLimiter
	metrics *metrics.Metrics
}

// NewProvider creates a provider for the given RPC endpoint.
func NewProvider(rpcURL string) *Provider {
	return &Provider{
		rpc:     rpc.NewClient(rpcURL),
		limiter: DefaultRateLimiter(),
	}
}

// WithMetrics attaches a metrics collector and returns the provider.
func (p *Provider) WithMetrics(m *metrics.Metrics) *Provider {
	p.metrics = m
	return p
}

// record instruments one logical RPC operation.
func (p *Provider) record(start time.Time, err error) {
	p.metrics.RecordRPCCall(time.Since(start), err)
}

// EstimateGas estimates gas for the given call.
func (p *Provider) EstimateGas(ctx context.Context, msg rpc.CallMsg) (uint64, error) {
	if err := p.limiter.Wait(ctx, "eth_estimateGas"); err != nil {
		return 0, err
	}

	start := time.Now()
	gas, err := Retry(ctx, func() (uint64, error) {
		return p.rpc.EstimateGas(ctx, msg)
	})
	p.record(start, err)
	return gas, err
}

// GasPrice returns the current gas price in wei.
func (p *Provider) GasPrice(ctx context.Context) (*big.Int, error) {
	if err := p.limiter.Wait(ctx, "eth_gasPrice"); err != nil {
		return nil, err
	}

	start := time.Now()
	price, err := Retry(ctx, func() (*big.Int, error) {
		return p.rpc.GasPrice(ctx)
	})
	p.record(start, err)
	return price, err
}

// Nonce returns the pending-state nonce for an address.
func (p *Provider) Nonce(ctx context.Context, address string) (uint64, error) {
	if err := p.limiter.Wait(ctx, "eth_getTransactionCount"); err != nil {
		return 0, err
	}

	start := time.Now()
	nonce, err := Retry(ctx, func() (uint64, error) {
		return p.rpc.GetTransactionCount(ctx, address, "pending")
	})
	p.record(start, err)
	return nonce, err
}

// EthCall dry-runs a call against the latest block.
func (p *Provider) EthCall(ctx context.Context, msg rpc.CallMsg) ([]byte, error) {
	if err := p.limiter.Wait(ctx, "eth_call"); err != nil {
		return nil, err
	}

	start := time.Now()
	ret, err := Retry(ctx, func() ([]byte, error) {
		return p.rpc.EthCall(ctx, msg, "latest")
	})
	p.record(start, err)
	return ret, err
}

// SendRawTransaction broadcasts a signed transaction and returns its hash.
func (p *Provider) SendRawTransaction(ctx context.Context, signedTx []byte) (string, error) {
	if err := p.limiter.Wait(ctx, "eth_sendRawTransaction"); err != nil {
		return "", err
	}

	start := time.Now()
	hash, err := p.rpc.SendRawTransaction(ctx, signedTx)
	p.record(start, err)
	return hash, err
}
