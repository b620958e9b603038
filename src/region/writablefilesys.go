package region

import (
	"os"
	"path/filepath"
)

type WriteableFileSystem interface {
	WriteFile(path Path, data []byte) error
}

type writableFS struct {
	base string
}

func (f *writableFS) WriteFile(path Path, data []byte) error {
	target := filepath.Join(f.base, filepath.FromSlash(string(path)))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0644)
}

// NewWritableFS saves layouts below basepath on disk.
func NewWritableFS(basepath string) WriteableFileSystem {
	return &writableFS{
		base: basepath,
	}
}
