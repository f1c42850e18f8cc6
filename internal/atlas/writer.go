package atlas

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bmfont-resolver/internal/logging"
)

// DefaultSuffix is appended to the font name to name the manifest file.
const DefaultSuffix = ".glyphs.yaml"

// Document is the YAML form of a Command.
type Document struct {
	Name   string  `yaml:"name"`
	Output string  `yaml:"output"`
	Glyphs []Glyph `yaml:"glyphs"`
}

// Glyph is one character/image pair; Image is relative to Output when possible.
type Glyph struct {
	Char      string `yaml:"char"`
	CodePoint string `yaml:"code_point"`
	Image     string `yaml:"image"`
}

// NewDocument converts a command, keeping its order.
func NewDocument(cmd Command) Document {
	doc := Document{
		Name:   cmd.FontName,
		Output: cmd.OutputDir,
		Glyphs: make([]Glyph, 0, len(cmd.Chars)),
	}

	for i, ch := range cmd.Chars {
		image := cmd.Images[i].Path
		if rel, err := filepath.Rel(cmd.OutputDir, image); err == nil {
			image = filepath.ToSlash(rel)
		}

		doc.Glyphs = append(doc.Glyphs, Glyph{
			Char:      string(ch),
			CodePoint: fmt.Sprintf("U+%04X", ch),
			Image:     image,
		})
	}

	return doc
}

// ManifestWriter writes a Command as <OutputDir>/<FontName><Suffix>.
type ManifestWriter struct {
	Suffix string
	Logger logrus.FieldLogger
}

// Path returns where Build writes cmd.
func (w *ManifestWriter) Path(cmd Command) string {
	suffix := w.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return filepath.Join(cmd.OutputDir, cmd.FontName+suffix)
}

// Build validates cmd and writes its manifest.
func (w *ManifestWriter) Build(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid build command: %w", err)
	}

	data, err := yaml.Marshal(NewDocument(cmd))
	if err != nil {
		return fmt.Errorf("failed to marshal glyph manifest: %w", err)
	}

	path := w.Path(cmd)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write glyph manifest %s: %w", path, err)
	}

	logging.OrDiscard(w.Logger).WithFields(logrus.Fields{
		"font":   cmd.FontName,
		"glyphs": len(cmd.Chars),
		"path":   path,
	}).Info("wrote glyph manifest")

	return nil
}
