package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies the class of a diagnostic.
type Kind int

const (
	// KindSelectionError: the selection is not exactly one folder.
	KindSelectionError Kind = iota
	// KindMissingMappingFile: chars.txt is absent from the folder.
	KindMissingMappingFile
	// KindMalformedLine: a mapping line does not have exactly two fields.
	KindMalformedLine
	// KindInvalidCharacterValue: a mapping value is not exactly one character.
	KindInvalidCharacterValue
	// KindUnmappedFile: a glyph image has no mapping entry.
	KindUnmappedFile
	// KindCountMismatch: resolved pair count differs from discovered file count.
	KindCountMismatch
	// KindSkippedFile: a glyph image was dropped by a soft policy.
	KindSkippedFile
	// KindReadFailure: the folder or mapping file could not be read.
	KindReadFailure
	// KindUnusedMapping: mapping entries matched no glyph image.
	KindUnusedMapping
)
