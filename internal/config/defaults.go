package config

// DefaultETHRPCURL is the default Ethereum mainnet RPC endpoint.
// Uses PublicNode (Allnodes), a privacy-first provider that requires no API key.
const DefaultETHRPCURL = "https://ethereum-rpc.publicnode.com"

// DefaultAnvilRPCURL is the default local development node endpoint.
const DefaultAnvilRPCURL = "http://localhost:8545"

// DefaultAnvilChainID is the chain id used by anvil and hardhat nodes.
const DefaultAnvilChainID = 31337

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.signet",
		Network: "anvil",
		Networks: []NetworkConfig{
			{
				Name:    "mainnet",
				ChainID: 1,
				RPC:     DefaultETHRPCURL,
				Dev:     false,
			},
			{
				Name:    "anvil",
				ChainID: DefaultAnvilChainID,
				RPC:     DefaultAnvilRPCURL,
				Dev:     true,
			},
		},
		Settings: SettingsConfig{
			FastMode: false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.signet/signet.log",
		},
	}
}
