// Package filestore keeps uploaded bytes in a single flat directory on local disk.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const tempPrefix = ".upload-"

// FileStore writes and resolves files under one root directory.
// It holds no mutable state and is safe for concurrent use.
type FileStore struct {
	root string
}

type FileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// New creates the root directory (and parents) if missing.
func New(root string) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload directory %q: %w", root, err)
	}
	abs = filepath.Clean(abs)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory %q: %w", abs, err)
	}
	return &FileStore{root: abs}, nil
}

// Root returns the absolute storage directory.
func (s *FileStore) Root() string {
	return s.root
}

// StoreGenerated writes r under a fresh UUID name that keeps the extension of
// originalName. An existing file with the same name is replaced.
func (s *FileStore) StoreGenerated(r io.Reader, originalName string) (string, error) {
	name, err := Sanitize(originalName)
	if err != nil {
		return "", err
	}
	stored := uuid.NewString() + extension(name)
	if err := s.write(stored, r); err != nil {
		return "", fmt.Errorf("could not store file %s: %w", name, err)
	}
	return stored, nil
}

// StoreOriginalName writes r under originalName, replacing any existing file.
func (s *FileStore) StoreOriginalName(r io.Reader, originalName string) (string, error) {
	name, err := Sanitize(originalName)
	if err != nil {
		return "", err
	}
	if err := s.write(name, r); err != nil {
		return "", fmt.Errorf("could not store file %s: %w", name, err)
	}
	return name, nil
}

// Resolve returns the absolute path of an existing regular file under root.
func (s *FileStore) Resolve(name string) (string, error) {
	p := filepath.Join(s.root, name)
	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return p, nil
}

// Delete removes name from the store. A missing file is not an error.
func (s *FileStore) Delete(name string) error {
	clean, err := Sanitize(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete file %s: %w", clean, err)
	}
	return nil
}

// List returns the regular files directly under root, sorted by name.
func (s *FileStore) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read upload directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), tempPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// write copies r into a temp file next to the target and renames it into place.
func (s *FileStore) write(name string, r io.Reader) error {
	tmp, err := os.CreateTemp(s.root, tempPrefix+"*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_ = tmp.Chmod(0o644)

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Sanitize rejects names that are empty, absolute, or carry a path separator
// or a ".." segment. Backslashes count as separators.
func Sanitize(name string) (string, error) {
	clean := strings.ReplaceAll(name, `\`, "/")
	if clean == "" || clean == "." || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	for _, seg := range strings.Split(clean, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
		}
	}
	if strings.Contains(clean, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return clean, nil
}

// extension returns the suffix starting at the last dot, or "" when the name
// has no dot past its first character.
func extension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[i:]
	}
	return ""
}
