package cli

import (
	"context"
	"fmt"

	"github.com/atelierhq/atelier/engine/bundle"
	"github.com/atelierhq/atelier/engine/generator"
	"github.com/atelierhq/atelier/engine/metadata"
	"github.com/atelierhq/atelier/engine/skeleton"
	"github.com/atelierhq/atelier/pkg/config"
	"github.com/atelierhq/atelier/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenerateCmd groups the code generators.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate application code",
	}
	cmd.AddCommand(generateCrudCmd())
	return cmd
}

func generateCrudCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crud",
		Short: "Generate a CRUD workflow for an entity",
		Long: "Generates a controller, view templates, a functional-test stub and a routing " +
			"configuration file for an entity inside a bundle.",
		Example: `  atelier generate crud \
    --bundle-namespace Acme/BlogBundle --bundle-path src/Acme/BlogBundle \
    --entity Blog/Post --fields "title:string,body:text,published_at:datetime?" \
    --route-prefix admin/blog --with-write`,
		RunE: runGenerateCrud,
	}

	cmd.Flags().String("entity", "", "Namespace-qualified entity name, e.g. Blog/Post")
	cmd.Flags().String("fields", "", "Entity fields, e.g. \"title:string,body:text\"")
	cmd.Flags().String("format", "", "Routing configuration format (yaml, xml, php, annotation)")
	cmd.Flags().String("route-prefix", "", "Route path prefix, e.g. admin/blog")
	cmd.Flags().Bool("with-write", false, "Also generate new, edit and delete actions")
	cmd.Flags().String("theme", "", "Skeleton theme to use")
	cmd.Flags().String("skeleton-dir", "", "Directory of custom skeleton themes")
	cmd.Flags().String("bundle-path", "", "Root directory of the target bundle")
	cmd.Flags().String("bundle-name", "", "Bundle name (derived from the namespace when omitted)")
	cmd.Flags().String("bundle-namespace", "", "Bundle namespace, e.g. Acme/BlogBundle")
	cmd.Flags().String("controller-dir", "", "Subdirectory controllers are organized under")

	if err := cmd.MarkFlagRequired("entity"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("bundle-path"); err != nil {
		panic(err)
	}

	return cmd
}

func runGenerateCrud(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx, err := setupContext(cmd, cfg)
	if err != nil {
		return err
	}

	entity, err := cmd.Flags().GetString("entity")
	if err != nil {
		return fmt.Errorf("failed to get entity flag: %w", err)
	}
	fields, err := cmd.Flags().GetString("fields")
	if err != nil {
		return fmt.Errorf("failed to get fields flag: %w", err)
	}
	routePrefix, err := cmd.Flags().GetString("route-prefix")
	if err != nil {
		return fmt.Errorf("failed to get route-prefix flag: %w", err)
	}
	withWrite, err := cmd.Flags().GetBool("with-write")
	if err != nil {
		return fmt.Errorf("failed to get with-write flag: %w", err)
	}
	controllerDir, err := cmd.Flags().GetString("controller-dir")
	if err != nil {
		return fmt.Errorf("failed to get controller-dir flag: %w", err)
	}
	format, err := stringFlagOrConfig(cmd.Flags(), "format", cfg.Format)
	if err != nil {
		return err
	}
	theme, err := stringFlagOrConfig(cmd.Flags(), "theme", cfg.Theme)
	if err != nil {
		return err
	}
	skeletonDir, err := stringFlagOrConfig(cmd.Flags(), "skeleton-dir", cfg.SkeletonDir)
	if err != nil {
		return err
	}

	meta, err := metadata.ParseFields(fields)
	if err != nil {
		return err
	}
	meta = meta.WithIdentifier()

	b, err := bundleFromFlags(cmd)
	if err != nil {
		return err
	}

	osFs := afero.NewOsFs()
	locator := skeleton.NewLocator(skeleton.Mount(osFs, skeletonDir), theme, skeleton.DefaultTheme)
	gen := generator.NewCrud(osFs, locator)

	return gen.Generate(ctx, &generator.Options{
		Bundle:        b,
		Entity:        entity,
		Metadata:      meta,
		Format:        format,
		RoutePrefix:   routePrefix,
		WithWrite:     withWrite,
		ControllerDir: controllerDir,
	})
}

func bundleFromFlags(cmd *cobra.Command) (*bundle.Bundle, error) {
	path, err := cmd.Flags().GetString("bundle-path")
	if err != nil {
		return nil, fmt.Errorf("failed to get bundle-path flag: %w", err)
	}
	name, err := cmd.Flags().GetString("bundle-name")
	if err != nil {
		return nil, fmt.Errorf("failed to get bundle-name flag: %w", err)
	}
	namespace, err := cmd.Flags().GetString("bundle-namespace")
	if err != nil {
		return nil, fmt.Errorf("failed to get bundle-namespace flag: %w", err)
	}
	return bundle.New(name, namespace, path)
}

// stringFlagOrConfig reads a flag, falling back to the configured value when
// the flag was not set on the command line.
func stringFlagOrConfig(flags *pflag.FlagSet, name, fallback string) (string, error) {
	value, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !flags.Changed(name) {
		return fallback, nil
	}
	return value, nil
}

// setupContext attaches a configured logger to the command context.
func setupContext(cmd *cobra.Command, cfg *config.Config) (context.Context, error) {
	logLevel, logJSON, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return nil, err
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-json") {
		logJSON = cfg.Log.JSON
	}
	log := logger.SetupLogger(logLevel, logJSON)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.ContextWithLogger(ctx, log), nil
}
