// Package chain models target Ethereum networks and their RPC providers.
package chain

import (
	"sync"
)

// Network is a target chain context. It is shared and read-only for the
// lifetime of an orchestration; the provider is built lazily and reused.
type Network struct {
	name    string
	chainID uint64
	rpcURL  string
	dev     bool

	once     sync.Once
	provider *Provider
}

// NewNetwork creates a network descriptor.
func NewNetwork(name string, chainID uint64, rpcURL string, dev bool) *Network {
	return &Network{
		name:    name,
		chainID: chainID,
		rpcURL:  rpcURL,
		dev:     dev,
	}
}

// Name returns the configured network name.
func (n *Network) Name() string {
	return n.name
}

// ChainID returns the chain id.
func (n *Network) ChainID() uint64 {
	return n.chainID
}

// IsDev reports whether this is a local/test network eligible for the
// fast-mode review bypass.
func (n *Network) IsDev() bool {
	return n.dev
}

// RPCURL returns the RPC endpoint.
func (n *Network) RPCURL() string {
	return n.rpcURL
}

// Provider returns the network's RPC provider, building it on first use.
// Safe for concurrent callers; the underlying HTTP client is shared.
func (n *Network) Provider() *Provider {
	n.once.Do(func() {
		n.provider = NewProvider(n.rpcURL)
	})
	return n.provider
}
