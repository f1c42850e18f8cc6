// Package glyphfstest implements an in-memory glyphfs.FS whose folder
// listings keep insertion order, so tests can pin enumeration order.
package glyphfstest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"time"
)

// FS is an in-memory filesystem. The zero value is not usable; call New.
type FS struct {
	files    map[string][]byte
	children map[string][]string
	failing  map[string]error
}

// New returns an empty FS.
func New() *FS {
	return &FS{
		files:    map[string][]byte{},
		children: map[string][]string{},
		failing:  map[string]error{},
	}
}

// AddDir registers an empty folder (and its parents).
func (m *FS) AddDir(path string) *FS {
	m.ensureDir(filepath.Clean(path))

	return m
}

// AddFile registers a file. Listing its folder yields files in the order
// they were added.
func (m *FS) AddFile(path string, data string) *FS {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		dir := filepath.Dir(path)
		m.ensureDir(dir)
		m.children[dir] = append(m.children[dir], filepath.Base(path))
	}

	m.files[path] = []byte(data)

	return m
}

// AddFiles adds empty files named names inside dir, in order.
func (m *FS) AddFiles(dir string, names ...string) *FS {
	for _, n := range names {
		m.AddFile(filepath.Join(dir, n), "")
	}

	return m
}

// FailReadDir makes ReadDir on path return err.
func (m *FS) FailReadDir(path string, err error) *FS {
	m.failing[filepath.Clean(path)] = err

	return m
}

func (m *FS) ensureDir(dir string) {
	if _, ok := m.children[dir]; ok {
		return
	}

	m.children[dir] = nil

	parent := filepath.Dir(dir)
	if parent == dir {
		return
	}

	m.ensureDir(parent)
	m.children[parent] = append(m.children[parent], filepath.Base(dir))
}

func (m *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = filepath.Clean(name)
	if err, ok := m.failing[name]; ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}

	kids, ok := m.children[name]
	if !ok {
		if _, isFile := m.files[name]; isFile {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: syscall.ENOTDIR}
		}

		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	out := make([]fs.DirEntry, 0, len(kids))
	for _, k := range kids {
		info, _ := m.Stat(filepath.Join(name, k))
		out = append(out, fs.FileInfoToDirEntry(info))
	}

	return out, nil
}

func (m *FS) ReadFile(name string) ([]byte, error) {
	name = filepath.Clean(name)

	data, ok := m.files[name]
	if !ok {
		if _, isDir := m.children[name]; isDir {
			return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
		}

		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return append([]byte(nil), data...), nil
}

func (m *FS) Stat(name string) (fs.FileInfo, error) {
	name = filepath.Clean(name)

	if data, ok := m.files[name]; ok {
		return fileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}

	if _, ok := m.children[name]; ok {
		return fileInfo{name: filepath.Base(name), dir: true}, nil
	}

	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return fi.dir }
func (fi fileInfo) Sys() any           { return nil }

func (fi fileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}

	return 0o644
}
