package resolve

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"bmfont-resolver/internal/common"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/logging"
	"bmfont-resolver/internal/manifest"
	"bmfont-resolver/internal/selection"
)

// FilenameResolver uses each image's stem as its character.
type FilenameResolver struct {
	scanner *glyphfs.Scanner
	logger  logrus.FieldLogger
}

// NewFilenameResolver creates a FilenameResolver.
func NewFilenameResolver(scanner *glyphfs.Scanner, logger logrus.FieldLogger) *FilenameResolver {
	return &FilenameResolver{scanner: scanner, logger: logging.OrDiscard(logger)}
}

func (r *FilenameResolver) Name() string { return StrategyFilename }

// Resolve keeps every image whose stem is one character, in scan order.
// Other images produce SkippedFile warnings. Only an unreadable folder
// fails the resolution.
func (r *FilenameResolver) Resolve(target selection.Target) (*manifest.Result, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	files, err := r.scanner.Scan(target.Dir)
	if err != nil {
		diags.AddError(diagnostic.KindReadFailure, err.Error(), target.Dir, 0)
		return nil, diags
	}

	res := &manifest.Result{OutputPath: target.Dir, FontName: target.FontName}

	for _, f := range files {
		ch, ok := common.SingleRune(f.Stem)
		if !ok {
			diags.AddWarning(diagnostic.KindSkippedFile,
				fmt.Sprintf("skipped: file name %q is not a single character", f.Stem), f.Path, 0)

			continue
		}

		res.Manifest.Add(ch, f)
	}

	r.logger.WithFields(logrus.Fields{
		"folder":   target.Dir,
		"images":   len(files),
		"resolved": res.Manifest.Len(),
		"skipped":  len(diags.Warnings),
	}).Debug("resolved glyphs from file names")

	return res, diags
}
