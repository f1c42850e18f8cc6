package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"bmfont-resolver/internal/charmap"
	"bmfont-resolver/internal/common"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/logging"
	"bmfont-resolver/internal/manifest"
	"bmfont-resolver/internal/match"
	"bmfont-resolver/internal/selection"
)

// DefaultSuggestionLimit caps suggestions per unmapped file.
const DefaultSuggestionLimit = 3

// MappingTableResolver resolves stems through the folder's mapping file.
type MappingTableResolver struct {
	// MappingFile is looked up directly inside the target folder.
	MappingFile     string
	SuggestionLimit int

	scanner *glyphfs.Scanner
	logger  logrus.FieldLogger
}

// NewMappingTableResolver creates a resolver reading charmap.FileName.
func NewMappingTableResolver(scanner *glyphfs.Scanner, logger logrus.FieldLogger) *MappingTableResolver {
	return &MappingTableResolver{
		MappingFile:     charmap.FileName,
		SuggestionLimit: DefaultSuggestionLimit,
		scanner:         scanner,
		logger:          logging.OrDiscard(logger),
	}
}

func (r *MappingTableResolver) Name() string { return StrategyChars }

// Resolve runs three gates in order, stopping after the first that
// records errors: parse the mapping file, look up every image, compare
// the image count with the resolved count. The folder is not scanned
// when the mapping file is missing or malformed.
func (r *MappingTableResolver) Resolve(target selection.Target) (*manifest.Result, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	table := r.loadTable(target.Dir, diags)
	if diags.HasErrors() {
		return nil, diags
	}

	files, err := r.scanner.Scan(target.Dir)
	if err != nil {
		diags.AddError(diagnostic.KindReadFailure, err.Error(), target.Dir, 0)
		return nil, diags
	}

	res := &manifest.Result{OutputPath: target.Dir, FontName: target.FontName}
	keys := table.Keys()

	for _, f := range files {
		ch, ok := table.Lookup(f.Stem)
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Kind:        diagnostic.KindUnmappedFile,
				Message:     fmt.Sprintf("no mapping entry for %q", f.Stem),
				File:        f.Path,
				Suggestions: match.Suggest(f.Stem, keys, r.SuggestionLimit),
			})

			continue
		}

		res.Manifest.Add(ch, f)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	checkCount(len(files), res.Manifest.Len(), target.Dir, diags)
	if diags.HasErrors() {
		return nil, diags
	}

	r.reportUnused(table, files, target.Dir, diags)

	r.logger.WithFields(logrus.Fields{
		"folder":   target.Dir,
		"mappings": table.Len(),
		"resolved": res.Manifest.Len(),
	}).Debug("resolved glyphs from mapping file")

	return res, diags
}

func (r *MappingTableResolver) loadTable(dir string, diags *diagnostic.Diagnostics) *charmap.Table {
	path := filepath.Join(dir, r.MappingFile)

	if !r.scanner.IsFile(path) {
		diags.AddError(diagnostic.KindMissingMappingFile,
			fmt.Sprintf("mapping file %s does not exist", r.MappingFile), path, 0)

		return nil
	}

	table, parseDiags, err := charmap.LoadFile(r.scanner, path)
	if err != nil {
		diags.AddError(diagnostic.KindReadFailure, err.Error(), path, 0)
		return nil
	}

	diags.Merge(*parseDiags)

	return table
}

// reportUnused records, as info, the mapping keys no image used. They do
// not fail resolution.
func (r *MappingTableResolver) reportUnused(table *charmap.Table, files []glyphfs.GlyphFile, dir string, diags *diagnostic.Diagnostics) {
	used := make(map[string]bool, len(files))
	for _, f := range files {
		used[f.Stem] = true
	}

	var unused []string

	for _, key := range table.Keys() {
		if !used[key] {
			unused = append(unused, key)
		}
	}

	if common.IsEmpty(unused) {
		return
	}

	diags.AddInfo(diagnostic.KindUnusedMapping,
		fmt.Sprintf("%d mapping entries match no image: %s", len(unused), strings.Join(unused, ", ")),
		filepath.Join(dir, r.MappingFile), 0)
}

// checkCount is the final gate: every discovered image must have produced
// exactly one pair.
func checkCount(files, resolved int, dir string, diags *diagnostic.Diagnostics) {
	if files == resolved {
		return
	}

	diags.AddError(diagnostic.KindCountMismatch,
		fmt.Sprintf("found %d images but resolved %d characters; they must match", files, resolved), dir, 0)
}
