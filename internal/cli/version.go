package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/output"
	"github.com/mrz1836/signet/internal/version"
)

// Version is set at build time via -ldflags.
var Version = "dev" //nolint:gochecknoglobals // Set by the linker

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	if !versionCheck {
		return formatter.Print(map[string]string{"version": Version})
	}

	client := version.NewClient("")
	info, err := client.Check(cmd.Context(), "mrz1836", "signet", Version)
	if err != nil {
		return err
	}

	if formatter.IsJSON() {
		return formatter.Print(map[string]any{
			"version": info.Current,
			"latest":  info.Latest,
			"newer":   info.IsNewer,
		})
	}

	if err := formatter.Printf("signet %s (latest release: %s)\n", info.Current, info.Latest); err != nil {
		return err
	}
	if info.IsNewer {
		output.Warnf("a newer release is available: %s", info.Latest)
	}
	return nil
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check for a newer release")
}
