package cli

import (
	"fmt"

	"github.com/hydrangea-network/hydrangea-postinst/internal/linker"
	"github.com/hydrangea-network/hydrangea-postinst/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	statusManifest string
	statusBinDir   string
	statusPrefix   string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every managed link",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusManifest, "manifest", "", "Path to a link manifest (default: bundled links.yaml)")
	statusCmd.Flags().StringVar(&statusBinDir, "bin-dir", "", "Directory links were created in (default: /usr/bin)")
	statusCmd.Flags().StringVar(&statusPrefix, "prefix", "", "Unpacked application prefix (default: /opt/hydrangea)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	binDir := resolveBinDir(statusBinDir)
	prefix := resolvePrefix(statusPrefix)

	m, _, err := manifest.Resolve(resolveManifestPath(statusManifest), prefix)
	if err != nil {
		return fmt.Errorf("resolving manifest: %w", err)
	}

	for _, s := range linker.Inspect(m, binDir, prefix) {
		switch s.State {
		case linker.StateOK:
			fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] %s -> %s\n", s.Path, s.Actual)
		case linker.StateMissing:
			fmt.Fprintf(cmd.OutOrStdout(), "  [MISS] %s not present\n", s.Path)
		case linker.StateBroken:
			fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %s -> %s (target missing)\n", s.Path, s.Want)
		case linker.StateWrongTarget:
			fmt.Fprintf(cmd.OutOrStdout(), "  [WARN] %s -> %s (expected %s)\n", s.Path, s.Actual, s.Want)
		case linker.StateNotSymlink:
			fmt.Fprintf(cmd.OutOrStdout(), "  [WARN] %s exists and is not a symlink\n", s.Path)
		}
	}
	return nil
}
