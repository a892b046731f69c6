package cli

import (
	"fmt"

	"github.com/hydrangea-network/hydrangea-postinst/internal/linker"
	"github.com/hydrangea-network/hydrangea-postinst/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	uninstallManifest string
	uninstallBinDir   string
	uninstallPrefix   string
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"prerm"},
	Short:   "Remove the CLI symlinks",
	Long: `Remove the symlinks the package owns. Only symlinks that resolve into
the application prefix are deleted; unrelated files and links are left alone.
Invoked by the package manager before removal (prerm) and always exits 0
under that name.`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallManifest, "manifest", "", "Path to a link manifest (default: bundled links.yaml)")
	uninstallCmd.Flags().StringVar(&uninstallBinDir, "bin-dir", "", "Directory links were created in (default: /usr/bin)")
	uninstallCmd.Flags().StringVar(&uninstallPrefix, "prefix", "", "Unpacked application prefix (default: /opt/hydrangea)")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	binDir := resolveBinDir(uninstallBinDir)
	prefix := resolvePrefix(uninstallPrefix)

	// Hook invocation: best-effort, like postinst.
	asHook := cmd.CalledAs() == "prerm"

	m, _, err := manifest.Resolve(resolveManifestPath(uninstallManifest), prefix)
	if err != nil {
		if asHook {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using built-in manifest\n", err)
			m = manifest.Default()
		} else {
			return fmt.Errorf("resolving manifest: %w", err)
		}
	}

	report := linker.Remove(m, binDir, prefix)
	for _, res := range report.Results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Err)
		case res.Removed:
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", res.Path)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", res.Name, res.Skipped)
		}
	}

	if !asHook && report.Failed() > 0 {
		return fmt.Errorf("%d of %d links failed", report.Failed(), len(report.Results))
	}
	return nil
}
