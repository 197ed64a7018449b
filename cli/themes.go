package cli

import (
	"fmt"

	"github.com/atelierhq/atelier/engine/skeleton"
	"github.com/atelierhq/atelier/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ThemesCmd lists the skeleton themes available to the generators.
func ThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available skeleton themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			skeletonDir, err := stringFlagOrConfig(cmd.Flags(), "skeleton-dir", cfg.SkeletonDir)
			if err != nil {
				return err
			}
			themes, err := skeleton.Themes(skeleton.Mount(afero.NewOsFs(), skeletonDir))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, theme := range themes {
				if theme.Description != "" {
					fmt.Fprintf(out, "%s\t%s\n", theme.Name, theme.Description)
					continue
				}
				fmt.Fprintln(out, theme.Name)
			}
			return nil
		},
	}
	cmd.Flags().String("skeleton-dir", "", "Directory of custom skeleton themes")
	return cmd
}
