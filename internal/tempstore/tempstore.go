// Package tempstore holds uploaded files on disk for the duration of a
// single request.
package tempstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

// New returns a Store rooted at dir, or at os.TempDir() when dir is empty.
func New(dir string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Entry is one stored upload. Callers must Remove it when done.
type Entry struct {
	path string
}

func (e *Entry) Path() string { return e.path }

// Remove deletes the entry. Removing an already removed entry is not an error.
func (e *Entry) Remove() error {
	if err := os.Remove(e.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", e.path, err)
	}
	return nil
}

// Save copies r into a new uniquely named file. ext may be given with or
// without the leading dot.
func (s *Store) Save(r io.Reader, ext string) (*Entry, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	path := filepath.Join(s.dir, "upload-"+uuid.NewString()+ext)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	e := &Entry{path: path}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = e.Remove()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = e.Remove()
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	return e, nil
}
