package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hydrangea-network/hydrangea-postinst/internal/linker"
	"github.com/hydrangea-network/hydrangea-postinst/internal/manifest"
	"github.com/hydrangea-network/hydrangea-postinst/internal/paths"
	"github.com/hydrangea-network/hydrangea-postinst/internal/platform"
	"github.com/hydrangea-network/hydrangea-postinst/internal/services"
	"github.com/spf13/cobra"
)

var (
	doctorManifest string
	doctorBinDir   string
	doctorPrefix   string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the link installation",
	Long:  `Run diagnostic checks on the unpacked package, the bin dir, and the managed links.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		binDir := resolveBinDir(doctorBinDir)
		prefix := resolvePrefix(doctorPrefix)
		out := cmd.OutOrStdout()

		runEnvironmentChecks(out, binDir, prefix)
		runManifestChecks(out, resolveManifestPath(doctorManifest), binDir, prefix)
		runRootChecks(out)
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorManifest, "manifest", "", "Path to a link manifest (default: bundled links.yaml)")
	doctorCmd.Flags().StringVar(&doctorBinDir, "bin-dir", "", "Directory links were created in (default: /usr/bin)")
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", "", "Unpacked application prefix (default: /opt/hydrangea)")
	rootCmd.AddCommand(doctorCmd)
}

func runEnvironmentChecks(out io.Writer, binDir, prefix string) {
	fmt.Fprintln(out, "Environment check:")

	if platform.SymlinksSupported() {
		fmt.Fprintln(out, "  [ OK ] symlinks supported")
	} else {
		fmt.Fprintln(out, "  [FAIL] symlinks not supported (enable developer mode on Windows)")
	}

	if info, err := os.Stat(prefix); err != nil {
		fmt.Fprintf(out, "  [FAIL] app prefix %s missing\n", prefix)
	} else if !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] app prefix %s is not a directory\n", prefix)
	} else {
		fmt.Fprintf(out, "  [ OK ] app prefix %s\n", prefix)
	}

	daemon := paths.DaemonBinary()
	if info, err := os.Stat(daemon); err != nil {
		fmt.Fprintf(out, "  [FAIL] daemon binary %s missing\n", daemon)
	} else if info.Mode()&0111 == 0 {
		fmt.Fprintf(out, "  [WARN] daemon binary %s is not executable\n", daemon)
	} else {
		fmt.Fprintf(out, "  [ OK ] daemon binary %s\n", daemon)
	}

	if info, err := os.Stat(binDir); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] bin dir %s missing\n", binDir)
	} else if !platform.Writable(binDir) {
		fmt.Fprintf(out, "  [WARN] bin dir %s not writable (run as root?)\n", binDir)
	} else {
		fmt.Fprintf(out, "  [ OK ] bin dir %s writable\n", binDir)
	}
}

func runManifestChecks(out io.Writer, explicit, binDir, prefix string) {
	fmt.Fprintln(out, "Manifest check:")

	m, source, err := manifest.Resolve(explicit, prefix)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] cannot load manifest: %v\n", err)
		return
	}

	if source == "" {
		fmt.Fprintln(out, "  [INFO] using built-in manifest")
	} else {
		result, err := manifest.ValidateFile(source)
		switch {
		case err != nil:
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return
		case !result.Valid:
			fmt.Fprintf(out, "  [FAIL] %s: %d validation issue(s):\n", source, len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			}
			return
		default:
			fmt.Fprintf(out, "  [ OK ] %s is valid\n", source)
		}
	}

	// Shim names that look like daemon services must name real ones.
	for _, spec := range m.Links {
		if name := strings.TrimPrefix(spec.Name, "hydrangea-"); name != spec.Name {
			svc := "hydrangea_" + strings.ReplaceAll(name, "-", "_")
			if !services.ValidService(svc) {
				fmt.Fprintf(out, "  [WARN] link %s does not match a known service\n", spec.Name)
			}
		}
	}

	fmt.Fprintln(out, "Link check:")
	for _, s := range linker.Inspect(m, binDir, prefix) {
		switch s.State {
		case linker.StateOK:
			fmt.Fprintf(out, "  [ OK ] %s\n", s.Path)
		case linker.StateMissing:
			fmt.Fprintf(out, "  [MISS] %s (run 'install')\n", s.Path)
		case linker.StateBroken:
			fmt.Fprintf(out, "  [FAIL] %s: target %s missing\n", s.Path, s.Want)
		case linker.StateWrongTarget:
			fmt.Fprintf(out, "  [WARN] %s points at %s (run 'install --force')\n", s.Path, s.Actual)
		case linker.StateNotSymlink:
			fmt.Fprintf(out, "  [WARN] %s occupied by a non-symlink\n", s.Path)
		}
	}
}

func runRootChecks(out io.Writer) {
	fmt.Fprintln(out, "Root check:")

	root, err := paths.Root()
	if err != nil {
		fmt.Fprintf(out, "  [WARN] cannot resolve root: %v\n", err)
		return
	}
	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(out, "  [INFO] %s not initialized yet\n", root)
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", root)
	}

	keys, err := paths.KeysRoot()
	if err == nil {
		if _, err := os.Stat(keys); err != nil {
			fmt.Fprintf(out, "  [INFO] %s not initialized yet\n", keys)
		} else {
			fmt.Fprintf(out, "  [ OK ] %s\n", keys)
		}
	}
}
