package atlas

import (
	"errors"
	"fmt"

	"bmfont-resolver/internal/glyphfs"
)

// Command is the handoff to the atlas build step.
type Command struct {
	Images    []glyphfs.GlyphFile
	Chars     []rune
	OutputDir string
	FontName  string
}

// Builder performs the atlas build for a resolved command.
type Builder interface {
	Build(cmd Command) error
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(cmd Command) error

func (f BuilderFunc) Build(cmd Command) error { return f(cmd) }

// Validate checks the structural contract of the handoff.
func (c Command) Validate() error {
	if len(c.Images) != len(c.Chars) {
		return fmt.Errorf("%d images but %d characters", len(c.Images), len(c.Chars))
	}

	if c.OutputDir == "" {
		return errors.New("output folder is empty")
	}

	if c.FontName == "" {
		return errors.New("font name is empty")
	}

	return nil
}
