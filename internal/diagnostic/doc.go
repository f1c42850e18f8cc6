// Package diagnostic provides structured errors, warnings and notes
// produced while resolving a glyph folder into a manifest.
//
// Resolution is accumulate-then-report: a resolver threads one
// Diagnostics value through its passes, records every defect it finds
// with enough location context (mapping file line, glyph file name) to
// fix the input, and only decides at the end whether the build may run.
//
// Key capabilities:
//   - Typed error kinds (selection, mapping file, unmapped glyphs, count gate)
//   - Per-file warnings for soft-skipped glyphs
//   - "Did you mean" suggestions on unmapped files
//   - Conversion to a single error value and structured logging
package diagnostic
