package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"github.com/mrz1836/signet/internal/output"
	"github.com/mrz1836/signet/internal/wallet"
	signeterr "github.com/mrz1836/signet/pkg/errors"
)

var (
	walletWords int
	walletCount int
	walletDev   bool
	walletKey   string
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage signing wallets",
}

var walletCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an HD wallet with a new mnemonic",
	Args:  cobra.ExactArgs(1),
	RunE:  runWalletCreate,
}

var walletImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Import a wallet from a mnemonic or private key",
	Long: `Import creates a wallet from an existing BIP39 mnemonic, or from a
raw private key when --key is given. Private-key wallets are always
treated as development wallets.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalletImport,
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallets",
	RunE:  runWalletList,
}

var walletUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Select the current wallet",
	Args:  cobra.ExactArgs(1),
	RunE:  runWalletUse,
}

func runWalletCreate(_ *cobra.Command, args []string) error {
	name := args[0]
	if err := wallet.ValidateName(name); err != nil {
		return err
	}

	bits := 128
	if walletWords == 24 {
		bits = 256
	} else if walletWords != 12 {
		return signeterr.WithSuggestion(signeterr.ErrInvalidInput, "--words must be 12 or 24")
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return signeterr.Wrap(err, "generating entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return signeterr.Wrap(err, "generating mnemonic")
	}

	def := wallet.Def{
		Name:     name,
		Kind:     wallet.KindHD,
		Dev:      walletDev,
		Mnemonic: mnemonic,
		Count:    walletCount,
	}
	if err := addWallet(def); err != nil {
		return err
	}

	output.Warn("Write down this mnemonic and store it safely. It will not be shown again.")
	if err := formatter.Printf("\n  %s\n\n", mnemonic); err != nil {
		return err
	}
	output.Successf("wallet %q created", name)
	return nil
}

func runWalletImport(_ *cobra.Command, args []string) error {
	name := args[0]
	if err := wallet.ValidateName(name); err != nil {
		return err
	}

	var def wallet.Def
	if walletKey != "" {
		def = wallet.Def{
			Name: name,
			Kind: wallet.KindPlaintext,
			Keys: []string{walletKey},
		}
	} else {
		mnemonic, err := promptSecret("Mnemonic: ")
		if err != nil {
			return err
		}
		def = wallet.Def{
			Name:     name,
			Kind:     wallet.KindHD,
			Dev:      walletDev,
			Mnemonic: mnemonic,
			Count:    walletCount,
		}
	}

	// Validate before persisting.
	if _, err := wallet.BuildDirectory([]wallet.Def{def}, ""); err != nil {
		return err
	}

	if err := addWallet(def); err != nil {
		return err
	}
	output.Successf("wallet %q imported", name)
	return nil
}

func runWalletList(_ *cobra.Command, _ []string) error {
	defs, current, err := openStore()
	if err != nil {
		return err
	}

	if formatter.IsJSON() {
		type row struct {
			Name    string `json:"name"`
			Kind    string `json:"kind"`
			Dev     bool   `json:"dev"`
			Current bool   `json:"current"`
		}
		rows := make([]row, 0, len(defs))
		for _, d := range defs {
			rows = append(rows, row{Name: d.Name, Kind: d.Kind.String(), Dev: d.Dev || d.Kind == wallet.KindPlaintext, Current: d.Name == current})
		}
		return formatter.Print(rows)
	}

	table := output.NewTable("", "NAME", "KIND", "DEV")
	for _, d := range defs {
		marker := ""
		if d.Name == current {
			marker = "*"
		}
		dev := ""
		if d.Dev || d.Kind == wallet.KindPlaintext {
			dev = "yes"
		}
		table.AddRow(marker, d.Name, d.Kind.String(), dev)
	}
	return formatter.Print(table)
}

func runWalletUse(_ *cobra.Command, args []string) error {
	name := args[0]

	defs, _, err := openStore()
	if err != nil {
		return err
	}

	known := make([]string, 0, len(defs))
	found := false
	for _, d := range defs {
		known = append(known, d.Name)
		if d.Name == name {
			found = true
		}
	}
	if !found {
		return wallet.NotFoundByName(name, known)
	}

	if err := saveStore(defs, name); err != nil {
		return err
	}
	output.Successf("current wallet is now %q", name)
	return nil
}

// openStore loads the encrypted store after prompting for the password.
func openStore() ([]wallet.Def, string, error) {
	store := wallet.NewStore(cfg.Home)
	if !store.Exists() {
		return nil, "", signeterr.WithSuggestion(
			signeterr.ErrStoreNotFound,
			"create a wallet first with: signet wallet create",
		)
	}

	password, err := promptPassword("Wallet password: ")
	if err != nil {
		return nil, "", err
	}
	defer zeroBytes(password)

	return store.Load(password)
}

// saveStore writes the definitions back, prompting for the password.
func saveStore(defs []wallet.Def, current string) error {
	password, err := promptPassword("Wallet password: ")
	if err != nil {
		return err
	}
	defer zeroBytes(password)

	return wallet.NewStore(cfg.Home).Save(defs, current, password)
}

// addWallet appends a definition to the store, creating the store on
// first use.
func addWallet(def wallet.Def) error {
	store := wallet.NewStore(cfg.Home)

	if !store.Exists() {
		password, err := promptNewPassword()
		if err != nil {
			return err
		}
		defer zeroBytes(password)
		return store.Save([]wallet.Def{def}, def.Name, password)
	}

	password, err := promptPassword("Wallet password: ")
	if err != nil {
		return err
	}
	defer zeroBytes(password)

	defs, current, err := store.Load(password)
	if err != nil {
		return err
	}

	for _, d := range defs {
		if d.Name == def.Name {
			return signeterr.WithDetails(signeterr.ErrInvalidInput, map[string]string{
				"name": def.Name,
			})
		}
	}

	defs = append(defs, def)
	if current == "" {
		current = def.Name
	}
	return store.Save(defs, current, password)
}

// promptSecret reads a hidden line from the terminal.
func promptSecret(prompt string) (string, error) {
	raw, err := promptPassword(prompt)
	if err != nil {
		return "", err
	}
	secret := strings.TrimSpace(string(raw))
	zeroBytes(raw)
	return secret, nil
}

func init() {
	walletCreateCmd.Flags().IntVar(&walletWords, "words", 12, "mnemonic length: 12 or 24 words")
	walletCreateCmd.Flags().IntVar(&walletCount, "count", 1, "number of addresses to derive")
	walletCreateCmd.Flags().BoolVar(&walletDev, "dev", false, "mark as a development wallet")

	walletImportCmd.Flags().IntVar(&walletCount, "count", 1, "number of addresses to derive")
	walletImportCmd.Flags().BoolVar(&walletDev, "dev", false, "mark as a development wallet")
	walletImportCmd.Flags().StringVar(&walletKey, "key", "", "hex private key instead of a mnemonic")

	walletCmd.AddCommand(walletCreateCmd)
	walletCmd.AddCommand(walletImportCmd)
	walletCmd.AddCommand(walletListCmd)
	walletCmd.AddCommand(walletUseCmd)
}
