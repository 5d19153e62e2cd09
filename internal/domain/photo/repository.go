package photo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"photoapi/internal/database"
)

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	CreateIfAbsent(ctx context.Context, p *Photo) (bool, error)
	GetByID(ctx context.Context, id int64) (*Photo, error)
	GetByFilename(ctx context.Context, filename string) (*Photo, error)
	ExistsByFilename(ctx context.Context, filename string) (bool, error)
	List(ctx context.Context) ([]Photo, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *Photo) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByFilename(ctx context.Context, filename string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts p. The unique index on filename is the final arbiter for
// concurrent inserts; its violation surfaces as ErrDuplicateFilename.
func (r *repository) Create(ctx context.Context, p *Photo) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// CreateIfAbsent inserts p unless a row with the same filename exists.
func (r *repository) CreateIfAbsent(ctx context.Context, p *Photo) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(p)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Photo, error) {
	var p Photo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByFilename(ctx context.Context, filename string) (*Photo, error) {
	var p Photo
	err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Photo{}).Where("filename = ?", filename).Count(&n).Error
	return n > 0, err
}

func (r *repository) List(ctx context.Context) ([]Photo, error) {
	photos := []Photo{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&photos).Error
	return photos, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Photo{}).Count(&n).Error
	return n, err
}

func (r *repository) Update(ctx context.Context, p *Photo) error {
	res := r.db.WithContext(ctx).Model(&Photo{}).Where("id = ?", p.ID).Update("filename", p.Filename)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Photo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *repository) DeleteByFilename(ctx context.Context, filename string) error {
	res := r.db.WithContext(ctx).Where("filename = ?", filename).Delete(&Photo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func translate(err error) error {
	if database.IsUniqueViolation(err) {
		return ErrDuplicateFilename
	}
	return err
}
