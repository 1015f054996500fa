// Package adapter contains the infrastructure the renaming engine relies on.
package adapter

import (
	"io/fs"
	"os"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
)

// RenameFS abstracts the filesystem operations of a batch so the engine can
// be tested without touching the disk.
type RenameFS interface {
	// Exists reports whether path points at an existing entry.
	Exists(path m.Path) bool

	// FileInfo returns metadata for path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Rename moves from to to within the same directory. An existing
	// destination is never overwritten.
	Rename(from, to m.Path) error
}

// LocalRenameFS implements RenameFS on top of the os package.
type LocalRenameFS struct{}

var _ RenameFS = (*LocalRenameFS)(nil)

// NewLocalRenameFS constructs a LocalRenameFS.
func NewLocalRenameFS() *LocalRenameFS {
	return &LocalRenameFS{}
}

// Exists reports whether path exists, following symlinks.
func (a *LocalRenameFS) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalRenameFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Rename performs a single rename attempt.
func (a *LocalRenameFS) Rename(from, to m.Path) error {
	if from == to {
		return nil
	}

	target, err := os.Lstat(string(to))
	if err == nil {
		source, serr := os.Lstat(string(from))
		// Case-only renames on case-insensitive filesystems point at the same file.
		if serr != nil || !os.SameFile(source, target) {
			return &os.LinkError{Op: "rename", Old: string(from), New: string(to), Err: fs.ErrExist}
		}
	}

	return os.Rename(string(from), string(to))
}
