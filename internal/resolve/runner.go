package resolve

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"bmfont-resolver/internal/atlas"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/logging"
	"bmfont-resolver/internal/manifest"
	"bmfont-resolver/internal/selection"
)

// Runner executes a direct build: selection precheck, strategy, handoff.
type Runner struct {
	Dirs    selection.DirChecker
	Locator selection.Locator
	// Builder receives successful results. Nil means dry run.
	Builder atlas.Builder
	Logger  logrus.FieldLogger
}

// Run resolves the selection with s. The returned error wraps the
// diagnostics when resolution failed, or the builder's error. The builder
// is never called unless resolution succeeded.
func (r *Runner) Run(s Strategy, handles []selection.Handle) (*manifest.Result, *diagnostic.Diagnostics, error) {
	loc := r.Locator
	if loc == nil {
		loc = selection.PathLocator
	}

	target, diags := selection.RequireFolder(handles, loc, r.Dirs)
	if diags.HasErrors() {
		return nil, diags, diags.Error()
	}

	res, resolveDiags := s.Resolve(target)
	diags.Merge(*resolveDiags)

	if res == nil || diags.HasErrors() {
		return nil, diags, diags.Error()
	}

	logger := logging.OrDiscard(r.Logger).WithFields(logrus.Fields{
		"strategy": s.Name(),
		"font":     res.FontName,
		"glyphs":   res.Manifest.Len(),
	})

	if r.Builder == nil {
		logger.Info("dry run, skipping build")
		return res, diags, nil
	}

	if err := r.Builder.Build(res.Command()); err != nil {
		return res, diags, fmt.Errorf("atlas build for %s failed: %w", res.FontName, err)
	}

	logger.Info("build handed off")

	return res, diags, nil
}
