package patch

import (
	"io/fs"
	"os"
	"path/filepath"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// FS is the writable filesystem surface the engine patches through. DirFS is
// the os-backed implementation; memoryfs.New() satisfies it for in-memory
// runs. Names use forward slashes.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
}

// DirFS resolves relative names under a root directory; absolute names are
// used as-is, matching how target paths written in documents are meant to
// behave.
type DirFS struct {
	root string
}

func NewDirFS(root string) *DirFS {
	return &DirFS{root: root}
}

func (d *DirFS) resolve(name string) string {
	name = filepath.FromSlash(name)

	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(d.root, name)
}

func (d *DirFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.resolve(name))
}

func (d *DirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(d.resolve(name), data, perm)
}

func (d *DirFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(d.resolve(path), perm)
}

func (d *DirFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(d.resolve(name))
}
