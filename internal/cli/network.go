package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/output"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage target networks",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured networks",
	RunE:  runNetworkList,
}

var networkUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Select the active network",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetworkUse,
}

func runNetworkList(_ *cobra.Command, _ []string) error {
	if formatter.IsJSON() {
		type row struct {
			Name    string `json:"name"`
			ChainID uint64 `json:"chain_id"`
			RPC     string `json:"rpc"`
			Dev     bool   `json:"dev"`
			Active  bool   `json:"active"`
		}
		rows := make([]row, 0, len(cfg.Networks))
		for _, n := range cfg.Networks {
			rows = append(rows, row{Name: n.Name, ChainID: n.ChainID, RPC: n.RPC, Dev: n.Dev, Active: n.Name == cfg.Network})
		}
		return formatter.Print(rows)
	}

	table := output.NewTable("", "NAME", "CHAIN ID", "RPC", "DEV")
	for _, n := range cfg.Networks {
		marker := ""
		if n.Name == cfg.Network {
			marker = "*"
		}
		dev := ""
		if n.Dev {
			dev = "yes"
		}
		table.AddRow(marker, n.Name, strconv.FormatUint(n.ChainID, 10), n.RPC, dev)
	}
	return formatter.Print(table)
}

func runNetworkUse(_ *cobra.Command, args []string) error {
	name := args[0]
	if _, err := cfg.FindNetwork(name); err != nil {
		return err
	}

	cfg.Network = name
	if err := cfg.Save(config.Path(cfg.Home)); err != nil {
		return err
	}

	output.Successf("active network is now %q", name)
	return nil
}

func init() {
	networkCmd.AddCommand(networkListCmd)
	networkCmd.AddCommand(networkUseCmd)
}
