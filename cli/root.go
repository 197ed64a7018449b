package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the atelier command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atelier",
		Short: "Atelier scaffolding tool",
		Long:  "Atelier generates bundle scaffolding (controllers, views, routing and test stubs) from skeleton templates.",
	}

	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Log in JSON format")

	root.AddCommand(
		GenerateCmd(),
		ThemesCmd(),
		VersionCmd(),
	)

	return root
}
