// Package main provides the CLI entrypoint for bmfont-resolver.
//
// bmfont-resolver turns a folder of glyph images into an ordered
// character → image manifest for a bitmap font atlas packer:
//   - build filename: each PNG's file name is its character
//   - build chars: chars.txt maps PNG file names to characters
//   - prefill: prints a starting session for the interactive editor
//   - chars init: writes a chars.txt template for a folder
package main

import (
	"os"

	"bmfont-resolver/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
