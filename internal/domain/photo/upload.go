package photo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"photoapi/internal/filestore"
	"photoapi/internal/pkg/validator"
)

// AllowedExtensions is the upload whitelist, compared lowercased.
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
}

const defaultContentType = "application/octet-stream"

// HasAllowedExtension reports whether name ends in a whitelisted image extension.
func HasAllowedExtension(name string) bool {
	return AllowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// ContentTypeFor maps a filename to the Content-Type used for downloads.
func ContentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// Upload validates the input, writes the bytes to the file store and then
// records the stored name. Nothing is written for empty or non-image input.
// A record conflict leaves the written file in place.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.Size <= 0 || in.Content == nil {
		return nil, ErrEmptyFile
	}
	if !HasAllowedExtension(in.OriginalName) {
		return nil, ErrInvalidFileType
	}
	if in.Size > s.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	var (
		stored string
		err    error
	)
	if in.UseOriginalName {
		var name string
		name, err = filestore.Sanitize(in.OriginalName)
		if err != nil {
			return nil, err
		}
		if err := ValidateFilename(name); err != nil {
			return nil, err
		}
		stored, err = s.files.StoreOriginalName(in.Content, name)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
	} else {
		stored, err = s.files.StoreGenerated(in.Content, in.OriginalName)
		if err != nil {
			if errors.Is(err, filestore.ErrInvalidPath) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
	}

	exists, err := s.repo.ExistsByFilename(ctx, stored)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFilename
	}

	p := &Photo{Filename: stored}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &UploadResult{
		Photo:            p,
		OriginalFilename: in.OriginalName,
		StoredFilename:   stored,
		FileSize:         in.Size,
		UploadPath:       s.files.Root(),
	}, nil
}

// Open resolves a stored name and opens it for reading.
func (s *Service) Open(name string) (*Download, error) {
	path, err := s.files.Resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, name, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, name, err)
	}

	return &Download{
		Name:        name,
		ContentType: ContentTypeFor(name),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		Content:     f,
	}, nil
}

// Audit compares the file store with the photos table.
func (s *Service) Audit(ctx context.Context) (*AuditReport, error) {
	files, err := s.files.List()
	if err != nil {
		return nil, err
	}
	photos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	onDisk := make(map[string]bool, len(files))
	for _, f := range files {
		onDisk[f.Name] = true
	}
	recorded := make(map[string]bool, len(photos))
	for _, p := range photos {
		recorded[p.Filename] = true
	}

	report := &AuditReport{
		OrphanFiles:  []filestore.FileInfo{},
		MissingFiles: []Photo{},
	}
	for _, f := range files {
		if !recorded[f.Name] {
			report.OrphanFiles = append(report.OrphanFiles, f)
		}
	}
	for _, p := range photos {
		if !onDisk[p.Filename] {
			report.MissingFiles = append(report.MissingFiles, p)
		}
	}
	return report, nil
}

// PruneOrphanFiles deletes files that no record points at and returns their names.
// Records are never touched.
func (s *Service) PruneOrphanFiles(ctx context.Context) ([]string, error) {
	report, err := s.Audit(ctx)
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(report.OrphanFiles))
	for _, f := range report.OrphanFiles {
		if err := s.files.Delete(f.Name); err != nil {
			return removed, err
		}
		removed = append(removed, f.Name)
	}
	return removed, nil
}

// ImportDirectory records every stored file that has a valid photo filename and
// no record yet. It returns the names it added.
func (s *Service) ImportDirectory(ctx context.Context) ([]string, error) {
	files, err := s.files.List()
	if err != nil {
		return nil, err
	}

	added := []string{}
	for _, f := range files {
		if len(f.Name) > validator.FilenameMaxLength || !validator.IsPhotoFilename(f.Name) {
			continue
		}
		created, err := s.repo.CreateIfAbsent(ctx, &Photo{Filename: f.Name})
		if err != nil {
			return added, fmt.Errorf("import %s: %w", f.Name, err)
		}
		if created {
			added = append(added, f.Name)
		}
	}
	return added, nil
}
