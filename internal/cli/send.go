package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/chain"
	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/metrics"
	"github.com/mrz1836/signet/internal/service/send"
	"github.com/mrz1836/signet/internal/tx"
	"github.com/mrz1836/signet/internal/wallet"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

var (
	sendFrom    string
	sendTo      string
	sendValue   string
	sendData    string
	sendNetwork string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a transaction with interactive review",
	Long: `Send resolves the signing wallet, estimates gas, and walks you
through an interactive review before signing and broadcasting.

With fast mode enabled, sends from a dev wallet on a dev network skip
the review entirely.`,
	RunE: runSend,
}

func runSend(cmd *cobra.Command, _ []string) error {
	dir, err := loadWallets()
	if err != nil {
		return err
	}

	netCfg, err := resolveNetwork()
	if err != nil {
		return err
	}
	network := chain.NewNetwork(netCfg.Name, netCfg.ChainID, netCfg.RPC, netCfg.Dev)

	m := metrics.New()
	provider := network.Provider().WithMetrics(m)

	svc := send.NewService(&send.Config{
		Wallets:  dir,
		Settings: config.NewSettings(cfg.Settings),
		Opener:   newTerminalOpener(os.Stdin, os.Stderr),
		Logger:   logger,
		Metrics:  m,
	})

	s, err := svc.NewSend(network, provider, &tx.RawParams{
		From:  sendFrom,
		To:    sendTo,
		Value: sendValue,
		Data:  sendData,
	})
	if err != nil {
		return err
	}

	logger.Debug("sending from wallet %q (path %s) on %s", s.WalletRef().Name, s.WalletRef().Path, network.Name())

	pending, err := s.Finish(cmd.Context())
	snap := m.Snapshot()
	logger.Debug("send finished: %d rpc calls, %d errors", snap.RPCCallsTotal, snap.RPCErrorsTotal)
	if err != nil {
		return err
	}

	return formatter.Print(map[string]any{
		"hash":     pending.Hash,
		"from":     pending.From.Hex(),
		"nonce":    pending.Nonce,
		"chain_id": pending.ChainID,
		"network":  network.Name(),
	})
}

// loadWallets opens the encrypted wallet store and builds the wallet
// directory.
func loadWallets() (*wallet.Directory, error) {
	store := wallet.NewStore(cfg.Home)
	if !store.Exists() {
		return nil, signeterr.WithSuggestion(
			signeterr.ErrStoreNotFound,
			"create a wallet first with: signet wallet create",
		)
	}

	password, err := promptPassword("Wallet password: ")
	if err != nil {
		return nil, err
	}
	defer zeroBytes(password)

	defs, current, err := store.Load(password)
	if err != nil {
		return nil, err
	}

	return wallet.BuildDirectory(defs, current)
}

// resolveNetwork picks the target network: the --network flag if set,
// otherwise the config's active network.
func resolveNetwork() (*config.NetworkConfig, error) {
	if sendNetwork != "" {
		return cfg.FindNetwork(sendNetwork)
	}
	return cfg.ActiveNetwork()
}

func init() {
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "sender address (default: current wallet)")
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient address (omit for contract deployment)")
	sendCmd.Flags().StringVar(&sendValue, "value", "", "amount in wei, decimal or 0x-hex")
	sendCmd.Flags().StringVar(&sendData, "data", "", "calldata as a hex string")
	sendCmd.Flags().StringVar(&sendNetwork, "network", "", "target network (default: active network)")
}
