package cli

import (
	"fmt"
	"time"

	"github.com/hydrangea-network/hydrangea-postinst/internal/linker"
	"github.com/hydrangea-network/hydrangea-postinst/internal/manifest"
	"github.com/hydrangea-network/hydrangea-postinst/internal/paths"
	"github.com/hydrangea-network/hydrangea-postinst/internal/version"
	"github.com/spf13/cobra"
)

var (
	installManifest string
	installBinDir   string
	installPrefix   string
	installForce    bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Create the CLI symlinks, surfacing errors",
	Long: `Create the CLI symlinks declared in the link manifest. Unlike postinst,
validation and filesystem errors fail the command, and --force replaces a
link that points at the wrong target. Regular files are never replaced.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installManifest, "manifest", "", "Path to a link manifest (default: bundled links.yaml)")
	installCmd.Flags().StringVar(&installBinDir, "bin-dir", "", "Directory to create links in (default: /usr/bin)")
	installCmd.Flags().StringVar(&installPrefix, "prefix", "", "Unpacked application prefix (default: /opt/hydrangea)")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Replace links that point at the wrong target")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	binDir := resolveBinDir(installBinDir)
	prefix := resolvePrefix(installPrefix)

	m, source, err := manifest.Resolve(resolveManifestPath(installManifest), prefix)
	if err != nil {
		return fmt.Errorf("resolving manifest: %w", err)
	}

	if source != "" {
		result, err := manifest.ValidateFile(source)
		if err != nil {
			return fmt.Errorf("validating manifest: %w", err)
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s\n", issue.Path, issue.Message)
			}
			return fmt.Errorf("manifest %s has %d validation issue(s)", source, len(result.Issues))
		}
	}

	report := linker.Apply(m, binDir, prefix, installForce)
	for _, res := range report.Results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", res.Name, res.Err)
		case res.Created:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s -> %s\n", res.Path, manifest.ResolveTarget(findSpec(m, res.Name), prefix))
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", res.Name, res.Skipped)
		}
	}

	if configDir, err := paths.ConfigDir(); err == nil {
		_ = version.SaveState(configDir, &version.State{
			Package:     m.Package,
			Version:     m.Version,
			InstalledAt: time.Now().UTC(),
			BinDir:      binDir,
		})
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d links failed", failed, len(report.Results))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d links created, %d skipped.\n",
		report.Created(), len(report.Results)-report.Created())
	return nil
}

func findSpec(m *manifest.Manifest, name string) manifest.LinkSpec {
	for _, spec := range m.Links {
		if spec.Name == name {
			return spec
		}
	}
	return manifest.LinkSpec{}
}
