// Package match ranks mapping keys by edit distance so an unmapped glyph
// file can be reported together with the keys it most likely meant.
package match
