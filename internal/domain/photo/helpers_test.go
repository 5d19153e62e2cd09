package photo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photoapi/internal/database"
	"photoapi/internal/filestore"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.ConnectWithOptions(filepath.Join(t.TempDir(), "photos.db"), database.Options{Silent: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Photo{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestStore(t *testing.T) *filestore.FileStore {
	t.Helper()
	fs, err := filestore.New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return fs
}

// Mock Photo Repository implementing the interface
type mockPhotoRepo struct {
	mock.Mock
}

func (m *mockPhotoRepo) Create(ctx context.Context, p *Photo) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil && p.ID == 0 {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *mockPhotoRepo) CreateIfAbsent(ctx context.Context, p *Photo) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhotoRepo) GetByID(ctx context.Context, id int64) (*Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Photo), args.Error(1)
}

func (m *mockPhotoRepo) GetByFilename(ctx context.Context, filename string) (*Photo, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Photo), args.Error(1)
}

func (m *mockPhotoRepo) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhotoRepo) List(ctx context.Context) ([]Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Photo), args.Error(1)
}

func (m *mockPhotoRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPhotoRepo) Update(ctx context.Context, p *Photo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPhotoRepo) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPhotoRepo) DeleteByFilename(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}
