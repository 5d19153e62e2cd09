package photo

import (
	"context"

	"photoapi/internal/pkg/validator"
)

// DefaultMaxUploadSize caps a single upload when the caller passes no limit.
const DefaultMaxUploadSize = 50 * 1024 * 1024 // 50 MB

// Service owns the photo records and orchestrates uploads into the file store.
type Service struct {
	repo          Repository
	files         FileStore
	maxUploadSize int64
}

func NewService(repo Repository, files FileStore, maxUploadSize int64) *Service {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &Service{repo: repo, files: files, maxUploadSize: maxUploadSize}
}

func (s *Service) List(ctx context.Context) ([]Photo, error) {
	photos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []Photo{}
	}
	return photos, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByFilename(ctx context.Context, filename string) (*Photo, error) {
	return s.repo.GetByFilename(ctx, filename)
}

// Create stores a metadata-only record. The existence check and the insert are
// not atomic; a concurrent duplicate is caught by the unique index instead.
func (s *Service) Create(ctx context.Context, filename string) (*Photo, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFilename
	}

	p := &Photo{Filename: filename}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename changes the filename of an existing record. The stored file is not moved.
func (s *Service) Rename(ctx context.Context, id int64, filename string) (*Photo, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Filename == filename {
		return p, nil
	}

	exists, err := s.repo.ExistsByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFilename
	}

	p.Filename = filename
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteByID removes the record only; the file on disk stays.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// DeleteByFilename removes the record only; the file on disk stays.
func (s *Service) DeleteByFilename(ctx context.Context, filename string) error {
	return s.repo.DeleteByFilename(ctx, filename)
}

// ValidateFilename applies the record rules to a filename.
func ValidateFilename(filename string) error {
	if fields := validator.Validate(FilenameRequest{Filename: filename}); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}
