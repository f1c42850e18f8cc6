package cli

import (
	"github.com/spf13/cobra"

	"bmfont-resolver/internal/prefill"
	"bmfont-resolver/internal/selection"
)

func (a *app) newPrefillCommand() *cobra.Command {
	var empty bool

	cmd := &cobra.Command{
		Use:   "prefill [folder | image...]",
		Short: "Print a prefilled build session for the interactive editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := prefill.Empty()

			if !empty {
				asm := prefill.NewAssembler(a.scanner, a.logger)
				asm.MappingFile = a.cfg.MappingFile
				session = asm.Assemble(selection.FromPaths(args, a.scanner), selection.PathLocator)
			}

			a.dump(cmd.ErrOrStderr(), session)

			data, err := session.Marshal()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVar(&empty, "empty", false, "Ignore the selection and print an empty session")

	return cmd
}
