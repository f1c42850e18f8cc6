// Package prefill builds the starting state of the interactive build
// session from the current selection. It validates nothing and never
// fails: whatever can be gathered is offered for manual correction.
package prefill

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bmfont-resolver/internal/charmap"
	"bmfont-resolver/internal/common"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/logging"
	"bmfont-resolver/internal/selection"
)

// Session is the editable state handed to the build window.
type Session struct {
	OutputPath string   `yaml:"output_path,omitempty"`
	FontName   string   `yaml:"font_name,omitempty"`
	Images     []string `yaml:"images"`
	// StagedChars are the single-character stems, in scan order.
	StagedChars string `yaml:"staged_chars,omitempty"`
	// CharContent is the raw mapping file text, or StagedChars when the
	// folder has no mapping file.
	CharContent     string `yaml:"char_content"`
	FromMappingFile bool   `yaml:"from_mapping_file"`
}

// Empty returns a session with nothing prefilled.
func Empty() *Session {
	return &Session{Images: []string{}}
}

// Marshal renders the session as YAML.
func (s *Session) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Assembler gathers a Session from a selection.
type Assembler struct {
	// MappingFile is the file whose raw text is offered when present.
	MappingFile string

	scanner *glyphfs.Scanner
	logger  logrus.FieldLogger
}

// NewAssembler creates an Assembler reading charmap.FileName.
func NewAssembler(scanner *glyphfs.Scanner, logger logrus.FieldLogger) *Assembler {
	return &Assembler{MappingFile: charmap.FileName, scanner: scanner, logger: logging.OrDiscard(logger)}
}

// Assemble prefills a session. A single folder yields its images and
// characters; textures (alone or several items) yield just those images;
// anything else yields an empty session.
func (a *Assembler) Assemble(handles []selection.Handle, loc selection.Locator) *Session {
	if loc == nil {
		loc = selection.PathLocator
	}

	first, ok := common.First(handles)
	if !ok {
		return Empty()
	}

	if common.IsMultiple(handles) || first.Kind == selection.KindTexture {
		return a.fromTextures(handles, loc)
	}

	path := loc.Locate(first)
	if !a.scanner.IsDir(path) {
		return Empty()
	}

	return a.fromFolder(path, first.Name)
}

func (a *Assembler) fromTextures(handles []selection.Handle, loc selection.Locator) *Session {
	s := Empty()

	for _, h := range handles {
		if h.Kind != selection.KindTexture {
			continue
		}

		s.Images = append(s.Images, loc.Locate(h))
	}

	return s
}

func (a *Assembler) fromFolder(dir, name string) *Session {
	s := Empty()
	s.OutputPath = dir
	s.FontName = name

	files, err := a.scanner.Scan(dir)
	if err != nil {
		a.logger.WithError(err).WithField("folder", dir).Warn("could not list glyph images")
	}

	var staged []rune

	for _, f := range files {
		s.Images = append(s.Images, f.Path)

		if ch, ok := common.SingleRune(f.Stem); ok {
			staged = append(staged, ch)
		}
	}

	s.StagedChars = string(staged)
	s.CharContent = s.StagedChars

	mappingPath := filepath.Join(dir, a.MappingFile)
	if !a.scanner.IsFile(mappingPath) {
		return s
	}

	data, err := a.scanner.ReadFile(mappingPath)
	if err != nil {
		a.logger.WithError(err).WithField("file", mappingPath).Warn("could not read mapping file")
		return s
	}

	text, err := charmap.Decode(data)
	if err != nil {
		a.logger.WithError(err).WithField("file", mappingPath).Warn("could not decode mapping file")
		return s
	}

	s.CharContent = string(text)
	s.FromMappingFile = true

	return s
}
