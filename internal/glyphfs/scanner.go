package glyphfs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects the images a scan keeps.
const DefaultPattern = "*.png"

// GlyphFile is a discovered glyph image.
type GlyphFile struct {
	// Path is the image location, joined from the scanned folder.
	Path string
	// Stem is the base name without its extension.
	Stem string
}

// NewGlyphFile derives the stem from path.
func NewGlyphFile(path string) GlyphFile {
	name := filepath.Base(path)

	return GlyphFile{
		Path: path,
		Stem: strings.TrimSuffix(name, filepath.Ext(name)),
	}
}

// Name returns the base file name.
func (g GlyphFile) Name() string {
	return filepath.Base(g.Path)
}

// Scanner lists glyph images in a folder.
type Scanner struct {
	fsys    FS
	pattern string
	folded  string
}

// NewScanner creates a Scanner over fsys. An empty pattern selects DefaultPattern.
func NewScanner(fsys FS, pattern string) (*Scanner, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid image pattern %q", pattern)
	}

	if fsys == nil {
		fsys = OSFS{}
	}

	return &Scanner{fsys: fsys, pattern: pattern, folded: strings.ToLower(pattern)}, nil
}

// FS returns the filesystem the scanner reads.
func (s *Scanner) FS() FS {
	return s.fsys
}

// Pattern returns the image pattern in use.
func (s *Scanner) Pattern() string {
	return s.pattern
}

// Matches reports whether a base file name is a glyph image. Case is
// ignored, so "A.PNG" matches "*.png".
func (s *Scanner) Matches(name string) bool {
	ok, err := doublestar.Match(s.folded, strings.ToLower(name))

	return err == nil && ok
}

// Scan returns the glyph images directly inside dir, in enumeration order.
func (s *Scanner) Scan(dir string) ([]GlyphFile, error) {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var files []GlyphFile

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if !s.Matches(e.Name()) {
			continue
		}

		files = append(files, NewGlyphFile(filepath.Join(dir, e.Name())))
	}

	return files, nil
}

// IsDir reports whether path is an existing directory.
func (s *Scanner) IsDir(path string) bool {
	info, err := s.fsys.Stat(path)

	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing regular file.
func (s *Scanner) IsFile(path string) bool {
	info, err := s.fsys.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads a file through the scanner's filesystem.
func (s *Scanner) ReadFile(path string) ([]byte, error) {
	return s.fsys.ReadFile(path)
}
