// Package uploads is the boundary to the image collaborator. The accounting
// core stores opaque references only; this package just drops the referenced
// file when an item is deleted or its image replaced.
package uploads

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Store interface {
	Remove(name string) error
}

type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) *DiskStore { return &DiskStore{Dir: dir} }

// Remove deletes the referenced file. A missing file is not an error; the
// reference may already have been cleaned up.
func (s *DiskStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	// References are bare filenames; Base keeps a crafted one inside Dir.
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
