package photo

import (
	"io"
	"time"

	"photoapi/internal/filestore"
)

// FilenameRequest is the body of create and rename calls.
type FilenameRequest struct {
	Filename string `json:"filename" validate:"required,max=255,photo_filename" example:"sunset.jpg"`
}

type UploadInput struct {
	OriginalName    string
	Size            int64
	Content         io.Reader
	UseOriginalName bool
}

type UploadResult struct {
	Photo            *Photo `json:"photo"`
	OriginalFilename string `json:"originalFilename"`
	StoredFilename   string `json:"storedFilename"`
	FileSize         int64  `json:"fileSize"`
	UploadPath       string `json:"uploadPath"`
}

// Download is an open stored file. The caller closes Content.
type Download struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	Content     io.ReadCloser
}

// AuditReport lists drift between the file store and the photos table.
type AuditReport struct {
	OrphanFiles  []filestore.FileInfo `json:"orphan_files"`
	MissingFiles []Photo              `json:"missing_files"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Photo with ID 1 deleted successfully."`
}
