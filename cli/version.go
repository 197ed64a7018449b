package cli

import (
	"fmt"

	"github.com/atelierhq/atelier/pkg/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints build information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "atelier %s (commit %s, built %s)\n",
				info.Version, info.CommitHash, info.BuildDate)
		},
	}
}
