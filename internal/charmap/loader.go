package charmap

import (
	"bytes"
	"fmt"
	"strings"

	"bmfont-resolver/internal/common"
	"bmfont-resolver/internal/diagnostic"
	"bmfont-resolver/internal/glyphfs"
)

const (
	// FileName is the mapping file expected inside a glyph folder.
	FileName = "chars.txt"
	// CommentPrefix starts a comment line.
	CommentPrefix = "//"

	separator = "\t"
)

// Reader reads whole files.
type Reader interface {
	ReadFile(name string) ([]byte, error)
}

// LoadFile reads and parses the mapping file at path. The error is
// non-nil only when the file cannot be read; content defects are in the
// diagnostics.
func LoadFile(r Reader, path string) (*Table, *diagnostic.Diagnostics, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	table, diags := Parse(data, path)

	return table, diags, nil
}

// Parse parses mapping file content, decoded with Decode. file is used
// only to label diagnostics. The table holds every valid line even when
// diagnostics contain errors.
func Parse(data []byte, file string) (*Table, *diagnostic.Diagnostics) {
	table := NewTable()
	diags := &diagnostic.Diagnostics{}

	decoded, err := Decode(data)
	if err != nil {
		diags.AddError(diagnostic.KindReadFailure, err.Error(), file, 0)
		return table, diags
	}

	text := strings.ReplaceAll(string(decoded), "\r", "")

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1

		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		parts := strings.Split(line, separator)
		if len(parts) != 2 {
			diags.AddError(diagnostic.KindMalformedLine,
				fmt.Sprintf("expected key<TAB>character, got %d tab-separated fields", len(parts)), file, lineNo)

			continue
		}

		key, value := parts[0], parts[1]
		if key == "" {
			diags.AddError(diagnostic.KindMalformedLine, "empty key", file, lineNo)
			continue
		}

		ch, ok := common.SingleRune(value)
		if !ok {
			diags.AddError(diagnostic.KindInvalidCharacterValue,
				fmt.Sprintf("value %q for key %q is not a single character", value, key), file, lineNo)

			continue
		}

		table.Set(key, ch)
	}

	return table, diags
}

// Format renders a table in mapping file form, in key order.
func Format(t *Table) []byte {
	var buf bytes.Buffer

	buf.WriteString(CommentPrefix + " key" + separator + "character\n")

	for _, e := range t.Entries() {
		buf.WriteString(e.Key + separator + string(e.Char) + "\n")
	}

	return buf.Bytes()
}

// Scaffold renders a starting mapping file for files. Stems that are
// already a single character map to themselves; every other stem is
// written as a commented-out line to be completed by hand.
func Scaffold(files []glyphfs.GlyphFile) []byte {
	var buf bytes.Buffer

	buf.WriteString(CommentPrefix + " key" + separator + "character\n")

	for _, f := range files {
		if _, ok := common.SingleRune(f.Stem); ok {
			buf.WriteString(f.Stem + separator + f.Stem + "\n")
			continue
		}

		buf.WriteString(CommentPrefix + f.Stem + separator + "\n")
	}

	return buf.Bytes()
}
