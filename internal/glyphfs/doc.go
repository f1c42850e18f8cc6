// Package glyphfs discovers glyph images inside a folder.
//
// A scan is non-recursive and keeps only regular files whose base name
// matches the configured doublestar pattern ("*.png" by default). Matching
// ignores case, as the Windows and macOS editors glyph folders come from
// do, so "A.PNG" is kept on every platform.
//
// The returned order is the order the filesystem enumerates the folder in.
// It is deliberately not sorted: the manifest built from a scan inherits
// this order, so two platforms may produce differently ordered manifests
// for the same folder.
package glyphfs
