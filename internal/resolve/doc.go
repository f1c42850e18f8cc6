// Package resolve turns a glyph folder into a manifest.
//
// Two strategies are provided and the caller picks one:
//
//   - FilenameResolver reads each image's stem as the character it draws.
//     A stem that is not exactly one character is skipped with a warning
//     and the rest of the folder still resolves. It never fails because of
//     a single bad file.
//   - MappingTableResolver looks every stem up in the folder's chars.txt.
//     It fails closed: any malformed mapping line, any image without a
//     mapping entry, or a resolved count that differs from the number of
//     images prevents a manifest from being produced. Defects are collected
//     across the whole pass before failing so one run reports all of them.
//
// Runner puts the selection precheck in front of a strategy and hands a
// successful result to an atlas.Builder.
package resolve
