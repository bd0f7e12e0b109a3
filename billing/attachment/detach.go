package attachment

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Detached is an attachment moved aside while the record that references it
// is being rewritten. Exactly one of Restore or Purge should follow.
type Detached struct {
	original string
	staged   string
}

// Detach moves the stored file at path out of the way. Nothing is staged when
// path is empty or the file is already gone.
func (s *Store) Detach(path string) (*Detached, error) {
	if path == "" {
		return &Detached{}, nil
	}
	p, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	if err := s.reachable(); err != nil {
		return nil, err
	}

	staged := p + ".detached-" + uuid.NewString()
	if err := os.Rename(p, staged); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Detached{}, nil
		}
		return nil, storageError("failed to detach bill image", err)
	}
	return &Detached{original: p, staged: staged}, nil
}

// Staged reports whether a file was actually moved aside.
func (d *Detached) Staged() bool {
	return d != nil && d.staged != ""
}

// StagedPath is the forward-slash path of the moved file, or "".
func (d *Detached) StagedPath() string {
	if !d.Staged() {
		return ""
	}
	return filepath.ToSlash(d.staged)
}

// OriginalPath is the forward-slash path the file was moved from, or "".
func (d *Detached) OriginalPath() string {
	if d == nil || d.original == "" {
		return ""
	}
	return filepath.ToSlash(d.original)
}

// Restore puts the file back where it was.
func (d *Detached) Restore() error {
	if !d.Staged() {
		return nil
	}
	if err := os.Rename(d.staged, d.original); err != nil {
		return storageError("failed to restore bill image", err)
	}
	d.staged = ""
	return nil
}

// Purge deletes the moved file for good.
func (d *Detached) Purge() error {
	if !d.Staged() {
		return nil
	}
	if err := os.Remove(d.staged); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return storageError("failed to remove bill image", err)
	}
	d.staged = ""
	return nil
}
