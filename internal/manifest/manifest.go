// Package manifest holds the ordered character/image association list a
// resolver produces.
package manifest

import (
	"bmfont-resolver/internal/atlas"
	"bmfont-resolver/internal/glyphfs"
)

// Pair associates one character with the image that draws it.
type Pair struct {
	Char  rune
	Image glyphfs.GlyphFile
}

// Manifest is an ordered list of pairs. Order is the folder scan order
// and is never re-sorted. A character may appear more than once.
type Manifest struct {
	Pairs []Pair
}

// Add appends a pair.
func (m *Manifest) Add(ch rune, image glyphfs.GlyphFile) {
	m.Pairs = append(m.Pairs, Pair{Char: ch, Image: image})
}

// Len returns the number of resolved pairs.
func (m *Manifest) Len() int {
	return len(m.Pairs)
}

// Chars returns the characters in manifest order.
func (m *Manifest) Chars() []rune {
	out := make([]rune, 0, len(m.Pairs))
	for _, p := range m.Pairs {
		out = append(out, p.Char)
	}

	return out
}

// Images returns the images in manifest order.
func (m *Manifest) Images() []glyphfs.GlyphFile {
	out := make([]glyphfs.GlyphFile, 0, len(m.Pairs))
	for _, p := range m.Pairs {
		out = append(out, p.Image)
	}

	return out
}

// Result is a successful resolution.
type Result struct {
	Manifest   Manifest
	OutputPath string
	FontName   string
}

// Command splits the result into the index-aligned build handoff.
func (r *Result) Command() atlas.Command {
	return atlas.Command{
		Images:    r.Manifest.Images(),
		Chars:     r.Manifest.Chars(),
		OutputDir: r.OutputPath,
		FontName:  r.FontName,
	}
}
