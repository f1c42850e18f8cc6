package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bmfont-resolver/internal/atlas"
	"bmfont-resolver/internal/resolve"
	"bmfont-resolver/internal/selection"
)

func (a *app) newBuildCommand() *cobra.Command {
	build := &cobra.Command{
		Use:   "build",
		Short: "Build a bitmap font directly from a glyph folder",
	}

	build.AddCommand(
		a.newBuildStrategyCommand(resolve.StrategyFilename, "Use each PNG file name as its character"),
		a.newBuildStrategyCommand(resolve.StrategyChars, "Map PNG file names to characters through chars.txt"),
	)

	return build
}

func (a *app) newBuildStrategyCommand(name, short string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   name + " <folder>",
		Short: short,
		// The selection precheck reports bad argument counts itself.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := resolve.New(name, a.scanner, resolve.Options{
				MappingFile:     a.cfg.MappingFile,
				SuggestionLimit: a.cfg.SuggestionLimit,
				Logger:          a.logger,
			})
			if err != nil {
				return err
			}

			writer := &atlas.ManifestWriter{Suffix: a.cfg.ManifestSuffix, Logger: a.logger}
			runner := &resolve.Runner{Dirs: a.scanner, Logger: a.logger}

			if !dryRun {
				runner.Builder = writer
			}

			res, diags, err := runner.Run(strategy, selection.FromPaths(args, a.scanner))
			if reportErr := a.report(diags); reportErr != nil {
				return reportErr
			}

			if err != nil {
				return err
			}

			a.dump(cmd.ErrOrStderr(), res)

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "resolved %d glyphs for %s (dry run)\n", res.Manifest.Len(), res.FontName)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d glyphs)\n", writer.Path(res.Command()), res.Manifest.Len())

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and validate without writing the glyph manifest")

	return cmd
}
