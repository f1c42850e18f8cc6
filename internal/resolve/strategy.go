package resolve

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/manifest"
	"bmfont-resolver/internal/selection"
)

// Strategy names accepted by New.
const (
	StrategyFilename = "filename"
	StrategyChars    = "chars"
)

// Strategy resolves a folder into a manifest or a set of errors.
// A nil result always comes with error diagnostics.
type Strategy interface {
	Name() string
	Resolve(target selection.Target) (*manifest.Result, *diagnostic.Diagnostics)
}

// Options configures the strategies built by New.
type Options struct {
	// MappingFile is the mapping file name inside the folder.
	MappingFile string
	// SuggestionLimit caps "did you mean" keys per unmapped file.
	SuggestionLimit int
	Logger          logrus.FieldLogger
}

// New returns the strategy registered under name.
func New(name string, scanner *glyphfs.Scanner, opts Options) (Strategy, error) {
	switch name {
	case StrategyFilename:
		return NewFilenameResolver(scanner, opts.Logger), nil
	case StrategyChars:
		r := NewMappingTableResolver(scanner, opts.Logger)
		if opts.MappingFile != "" {
			r.MappingFile = opts.MappingFile
		}

		if opts.SuggestionLimit > 0 {
			r.SuggestionLimit = opts.SuggestionLimit
		}

		return r, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want %s or %s)", name, StrategyFilename, StrategyChars)
	}
}
