// Package charmap parses and writes chars.txt, the line-oriented table
// that maps glyph file stems to the character each image draws.
//
// # Format
//
// The file is UTF-8 text. Carriage returns are removed and the rest is
// split on line feeds:
//
//	// digits with readable names
//	zero	0
//	one	1
//	dot	.
//
//   - Empty lines and lines starting with "//" are ignored.
//   - Every other line is "key<TAB>character": exactly two fields, a
//     non-empty key, and a value that is exactly one code point.
//   - A key seen again replaces the earlier entry (last write wins).
//
// # Errors
//
// Parse never stops at the first defect. Every malformed line and every
// invalid value is reported with its 1-based line number so one run
// surfaces everything that needs fixing. Lines that fail are not added to
// the table.
package charmap
