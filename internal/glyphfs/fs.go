package glyphfs

import (
	"io/fs"
	"os"
)

// FS is the filesystem surface a scan needs.
// ReadDir must return entries in enumeration order, unsorted.
type FS interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

// OSFS reads the host filesystem.
type OSFS struct{}

// ReadDir lists name without sorting, unlike os.ReadDir.
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
