// Package atlas is the boundary to the external atlas/font build step.
//
// A Command carries two index-aligned arrays (glyph images and the
// characters they draw) plus the output folder and font name. Packing the
// atlas is not done here: the shipped Builder, ManifestWriter, emits the
// command as a YAML glyph manifest for the packer to consume.
package atlas
