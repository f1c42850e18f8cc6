//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/resolve"
	"bmfont-resolver/internal/selection"
)

// Usage: go run ./cmd/bmfont-resolver/debug_resolve.go <filename|chars> <folder>
func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: debug_resolve <filename|chars> <folder>")
		os.Exit(1)
	}

	scanner, err := glyphfs.NewScanner(nil, "")
	if err != nil {
		fmt.Println("scanner:", err)
		os.Exit(1)
	}

	strategy, err := resolve.New(os.Args[1], scanner, resolve.Options{})
	if err != nil {
		fmt.Println("strategy:", err)
		os.Exit(1)
	}

	handles := selection.FromPaths(os.Args[2:], scanner)
	runner := &resolve.Runner{Dirs: scanner}

	res, diags, err := runner.Run(strategy, handles)
	spew.Dump(diags)

	if err != nil {
		fmt.Println("resolve:", err)
		os.Exit(1)
	}

	spew.Dump(res.Command())
}
