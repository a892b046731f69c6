package cli

import (
	"github.com/hydrangea-network/hydrangea-postinst/internal/branding"
	"github.com/hydrangea-network/hydrangea-postinst/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` package hooks. The desktop package unpacks under ` + branding.AppPrefix() + `
and this tool maintains the symlinks that expose its bundled CLI on PATH.
Package managers invoke the postinst/prerm commands; the rest are for
interactive inspection and repair.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
