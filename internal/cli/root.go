// Package cli wires the resolvers into the bmfont-resolver command tree.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bmfont-resolver/internal/config"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool
	logFormat  string
	debug      bool

	cfg     *config.Config
	logger  *logrus.Logger
	scanner *glyphfs.Scanner
	fsys    glyphfs.FS
}

// NewRootCommand builds the command tree. fsys is the filesystem every
// command reads; nil means the host filesystem.
func NewRootCommand(fsys glyphfs.FS) *cobra.Command {
	a := &app{fsys: fsys}

	root := &cobra.Command{
		Use:           "bmfont-resolver",
		Short:         "Resolve glyph image folders into bitmap font manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "Settings file (optional when left at the default)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text|json (overrides settings)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Dump resolved values to stderr")

	root.AddCommand(a.newBuildCommand(), a.newPrefillCommand(), a.newCharsCommand())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	optional := !cmd.Flags().Changed("config")

	cfg, err := config.LoadFile(a.configPath, optional)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if a.verbose {
		level = logrus.DebugLevel.String()
	}

	format := cfg.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}

	scanner, err := glyphfs.NewScanner(a.fsys, cfg.ImagePattern)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.scanner = cfg, logger, scanner

	return nil
}

// report logs every diagnostic and converts errors into a short command error.
func (a *app) report(diags *diagnostic.Diagnostics) error {
	if diags == nil {
		return nil
	}

	diags.Log(a.logger)

	if diags.IsValid() {
		return nil
	}

	return fmt.Errorf("resolution failed with %d error(s)", len(diags.Errors))
}

func (a *app) dump(w io.Writer, v any) {
	if a.debug {
		spew.Fdump(w, v)
	}
}

// ErrFailed is returned by Execute when a command failed.
var ErrFailed = errors.New("command failed")

// Execute runs the root command against the host filesystem and prints
// the error, if any, to stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(nil)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return fmt.Errorf("%w: %w", ErrFailed, err)
	}

	return nil
}
