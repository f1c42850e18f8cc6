// Package selection models the host's current asset selection and the
// single-folder precheck that guards every direct build.
package selection

import (
	"fmt"
	"path/filepath"
	"strings"

	"bmfont-resolver/internal/common"
	"bmfont-resolver/internal/diagnostic"
)

// Handle is one selected asset as the host reports it.
type Handle struct {
	// ID is the host reference used to locate the asset.
	ID string
	// Name is the asset's display name; a folder's name becomes the font name.
	Name string
	Kind Kind
}

// Locator resolves a handle to a filesystem path.
type Locator interface {
	Locate(h Handle) string
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(h Handle) string

func (f LocatorFunc) Locate(h Handle) string { return f(h) }

// PathLocator treats a handle ID as its path.
var PathLocator = LocatorFunc(func(h Handle) string { return h.ID })

// DirChecker answers whether a path is a directory.
type DirChecker interface {
	IsDir(path string) bool
}

// Target is the folder a resolver works on.
type Target struct {
	// Dir is the folder path; it is also the build output path.
	Dir string
	// FontName is the folder's asset name.
	FontName string
}

// RequireFolder checks that exactly one handle is selected and that it
// locates to a directory. On failure the returned diagnostics hold a
// single SelectionError and the target is zero.
func RequireFolder(handles []Handle, loc Locator, dirs DirChecker) (Target, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	h, ok := common.First(handles)
	if !ok || !common.IsSingle(handles) {
		diags.AddError(diagnostic.KindSelectionError,
			fmt.Sprintf("select exactly one folder, got %d items", len(handles)), "", 0)

		return Target{}, diags
	}

	path := loc.Locate(h)
	if path == "" || !dirs.IsDir(path) {
		diags.AddError(diagnostic.KindSelectionError,
			fmt.Sprintf("selected %s %q is not a folder", strings.ToLower(h.Kind.String()), h.Name), path, 0)

		return Target{}, diags
	}

	return Target{Dir: path, FontName: h.Name}, diags
}

// FileChecker classifies paths for FromPaths.
type FileChecker interface {
	DirChecker
	IsFile(path string) bool
	Matches(name string) bool
}

// FromPaths builds handles from command-line paths. Folders are named
// after their last element, textures after their stem.
func FromPaths(paths []string, files FileChecker) []Handle {
	handles := make([]Handle, 0, len(paths))

	for _, p := range paths {
		name := p
		if abs, err := filepath.Abs(p); err == nil {
			name = abs
		}

		name = filepath.Base(name)

		h := Handle{ID: p, Name: name, Kind: KindOther}

		switch {
		case files.IsDir(p):
			h.Kind = KindFolder
		case files.IsFile(p) && files.Matches(name):
			h.Kind = KindTexture
			h.Name = strings.TrimSuffix(name, filepath.Ext(name))
		}

		handles = append(handles, h)
	}

	return handles
}
