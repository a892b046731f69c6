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
	postinstManifest string
	postinstBinDir   string
	postinstPrefix   string
)

var postinstCmd = &cobra.Command{
	Use:   "postinst",
	Short: "Package post-install hook: create the CLI symlinks",
	Long: `Create the CLI symlinks declared in the link manifest. This command is
invoked by the package manager after unpacking and always exits 0: a partial
or failed link step must never abort the package installation. Failures are
reported on stderr. Use 'install' for an interactive run that surfaces errors.`,
	Args: cobra.NoArgs,
	RunE: runPostinst,
}

func init() {
	postinstCmd.Flags().StringVar(&postinstManifest, "manifest", "", "Path to a link manifest (default: bundled links.yaml)")
	postinstCmd.Flags().StringVar(&postinstBinDir, "bin-dir", "", "Directory to create links in (default: /usr/bin)")
	postinstCmd.Flags().StringVar(&postinstPrefix, "prefix", "", "Unpacked application prefix (default: /opt/hydrangea)")
	rootCmd.AddCommand(postinstCmd)
}

// runPostinst never returns an error. The package manager treats any
// non-zero exit as a failed installation, so every problem is demoted to
// a stderr diagnostic.
func runPostinst(cmd *cobra.Command, args []string) error {
	binDir := resolveBinDir(postinstBinDir)
	prefix := resolvePrefix(postinstPrefix)

	m, source, err := manifest.Resolve(resolveManifestPath(postinstManifest), prefix)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; using built-in manifest\n", err)
		m, source = manifest.Default(), ""
	}

	if source != "" {
		if result, err := manifest.ValidateFile(source); err == nil && !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s %s\n", source, issue.Path, issue.Message)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: manifest invalid; using built-in manifest\n")
			m = manifest.Default()
		}
	}

	report := linker.Apply(m, binDir, prefix, false)
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Err)
		}
	}

	recordState(cmd, m, binDir)
	return nil
}

// recordState remembers the installed version for upgrade detection on the
// next run. Best-effort like everything else in the hook.
func recordState(cmd *cobra.Command, m *manifest.Manifest, binDir string) {
	configDir, err := paths.ConfigDir()
	if err != nil {
		return
	}

	previous := ""
	if state, err := version.LoadState(configDir); err == nil && state != nil {
		previous = state.Version
	}
	if t := version.Transition(previous, m.Version); t != "install" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s -> %s (%s)\n", m.Package, previous, m.Version, t)
	}

	_ = version.SaveState(configDir, &version.State{
		Package:     m.Package,
		Version:     m.Version,
		InstalledAt: time.Now().UTC(),
		BinDir:      binDir,
	})
}
