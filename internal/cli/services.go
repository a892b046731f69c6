package cli

import (
	"fmt"
	"strings"

	"github.com/hydrangea-network/hydrangea-postinst/internal/services"
	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services [group...]",
	Short: "List daemon service groups",
	Long: `List the daemon service groups the bundled CLI can start. With group
arguments, print the services each group expands to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, g := range services.AllGroups() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", g, strings.Join(services.ForGroups(g), " "))
			}
			return nil
		}

		for _, g := range args {
			if !services.ValidGroup(g) {
				return fmt.Errorf("unknown service group %q", g)
			}
		}
		for _, svc := range services.ForGroups(args...) {
			fmt.Fprintln(cmd.OutOrStdout(), svc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
