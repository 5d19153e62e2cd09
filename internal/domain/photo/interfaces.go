package photo

import (
	"io"

	"photoapi/internal/filestore"
)

// FileStore is the slice of *filestore.FileStore the service relies on.
type FileStore interface {
	StoreGenerated(r io.Reader, originalName string) (string, error)
	StoreOriginalName(r io.Reader, originalName string) (string, error)
	Resolve(name string) (string, error)
	Delete(name string) error
	List() ([]filestore.FileInfo, error)
	Root() string
}
