package photo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"photoapi/internal/filestore"
)

var (
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrDuplicateFilename = errors.New("a photo with this filename already exists")
	ErrEmptyFile         = errors.New("please select a file to upload")
	ErrInvalidFileType   = errors.New("invalid file type, only image files are allowed")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")

	// ErrFileNotFound aliases the file store sentinel.
	ErrFileNotFound = filestore.ErrFileNotFound
)

// ValidationError carries per-field messages keyed by json field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
