package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bmfont-resolver/internal/charmap"
	"bmfont-resolver/internal/selection"
)

func (a *app) newCharsCommand() *cobra.Command {
	chars := &cobra.Command{
		Use:   "chars",
		Short: "Work with chars.txt mapping files",
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init <folder>",
		Short: "Write a chars.txt template listing every glyph image",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, diags := selection.RequireFolder(selection.FromPaths(args, a.scanner), selection.PathLocator, a.scanner)
			if err := a.report(diags); err != nil {
				return err
			}

			path := filepath.Join(target.Dir, a.cfg.MappingFile)
			if a.scanner.IsFile(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			files, err := a.scanner.Scan(target.Dir)
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, charmap.Scaffold(files), 0o644); err != nil {
				return fmt.Errorf("failed to write mapping file %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d images)\n", path, len(files))

			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing mapping file")
	chars.AddCommand(initCmd)

	return chars
}
