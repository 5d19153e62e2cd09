package filestore

import "errors"

var (
	ErrInvalidPath  = errors.New("invalid path sequence in filename")
	ErrFileNotFound = errors.New("file not found")
)
