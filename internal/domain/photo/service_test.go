package photo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photoapi/internal/filestore"
)

func storedFiles(t *testing.T, fs *filestore.FileStore) []string {
	t.Helper()
	files, err := fs.List()
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

func uploadInput(name, content string, original bool) UploadInput {
	return UploadInput{
		OriginalName:    name,
		Size:            int64(len(content)),
		Content:         strings.NewReader(content),
		UseOriginalName: original,
	}
}

func TestService_Create_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	repo.On("ExistsByFilename", ctx, "test.jpg").Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(p *Photo) bool { return p.Filename == "test.jpg" })).Return(nil)

	p, err := svc.Create(ctx, "test.jpg")

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "test.jpg", p.Filename)
	repo.AssertExpectations(t)
}

func TestService_Create_InvalidFilenameTouchesNothing(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	for _, name := range []string{"", "invalid_file.txt", "my photo.jpg", "../evil.jpg", "dir/a.png", "a@b.jpg", strings.Repeat("a", 252) + ".jpg"} {
		_, err := svc.Create(ctx, name)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, name)
		assert.Contains(t, verr.Fields, "filename")
	}

	repo.AssertNotCalled(t, "ExistsByFilename", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	repo.On("ExistsByFilename", ctx, "test.jpg").Return(true, nil)

	_, err := svc.Create(ctx, "test.jpg")

	assert.ErrorIs(t, err, ErrDuplicateFilename)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_LostRaceIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	// another request inserted between the check and the insert
	repo.On("ExistsByFilename", ctx, "race.jpg").Return(false, nil)
	repo.On("Create", ctx, mock.Anything).Return(ErrDuplicateFilename)

	_, err := svc.Create(ctx, "race.jpg")

	assert.ErrorIs(t, err, ErrDuplicateFilename)
	repo.AssertExpectations(t)
}

func TestService_List_NeverNil(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	repo.On("List", ctx).Return(nil, nil)

	photos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)
}

func TestService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		svc := NewService(repo, newTestStore(t), 0)
		repo.On("GetByID", ctx, int64(7)).Return(&Photo{ID: 7, Filename: "old.jpg"}, nil)
		repo.On("ExistsByFilename", ctx, "new.jpg").Return(false, nil)
		repo.On("Update", ctx, &Photo{ID: 7, Filename: "new.jpg"}).Return(nil)

		p, err := svc.Rename(ctx, 7, "new.jpg")
		require.NoError(t, err)
		assert.Equal(t, "new.jpg", p.Filename)
		repo.AssertExpectations(t)
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		svc := NewService(repo, newTestStore(t), 0)
		repo.On("GetByID", ctx, int64(7)).Return(&Photo{ID: 7, Filename: "old.jpg"}, nil)

		_, err := svc.Rename(ctx, 7, "old.jpg")
		require.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		svc := NewService(repo, newTestStore(t), 0)
		repo.On("GetByID", ctx, int64(7)).Return(nil, ErrPhotoNotFound)

		_, err := svc.Rename(ctx, 7, "new.jpg")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("name taken", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		svc := NewService(repo, newTestStore(t), 0)
		repo.On("GetByID", ctx, int64(7)).Return(&Photo{ID: 7, Filename: "old.jpg"}, nil)
		repo.On("ExistsByFilename", ctx, "taken.jpg").Return(true, nil)

		_, err := svc.Rename(ctx, 7, "taken.jpg")
		assert.ErrorIs(t, err, ErrDuplicateFilename)
	})

	t.Run("invalid name", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		svc := NewService(repo, newTestStore(t), 0)

		_, err := svc.Rename(ctx, 7, "new.txt")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestService_Upload_Generated(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	fs := newTestStore(t)
	svc := NewService(repo, fs, 0)

	repo.On("ExistsByFilename", ctx, mock.AnythingOfType("string")).Return(false, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.Upload(ctx, uploadInput("test.jpg", "test image content", false))
	require.NoError(t, err)

	assert.Equal(t, "test.jpg", res.OriginalFilename)
	assert.NotEqual(t, "test.jpg", res.StoredFilename)
	assert.True(t, strings.HasSuffix(res.StoredFilename, ".jpg"))
	assert.Equal(t, res.StoredFilename, res.Photo.Filename)
	assert.Equal(t, int64(18), res.FileSize)
	assert.Equal(t, fs.Root(), res.UploadPath)

	data, err := os.ReadFile(filepath.Join(fs.Root(), res.StoredFilename))
	require.NoError(t, err)
	assert.Equal(t, "test image content", string(data))
	repo.AssertExpectations(t)
}

func TestService_Upload_RejectedBeforeAnyWrite(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		in   UploadInput
		want error
	}{
		{name: "empty", in: uploadInput("test.jpg", "", false), want: ErrEmptyFile},
		{name: "empty original", in: uploadInput("test.jpg", "", true), want: ErrEmptyFile},
		{name: "text file", in: uploadInput("test.txt", "text", false), want: ErrInvalidFileType},
		{name: "no extension", in: uploadInput("photo", "bytes", true), want: ErrInvalidFileType},
		{name: "traversal generated", in: uploadInput("../evil.jpg", "evil", false), want: filestore.ErrInvalidPath},
		{name: "traversal original", in: uploadInput("../evil.jpg", "evil", true), want: filestore.ErrInvalidPath},
		{name: "windows traversal", in: uploadInput(`..\evil.jpg`, "evil", true), want: filestore.ErrInvalidPath},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockPhotoRepo)
			fs := newTestStore(t)
			svc := NewService(repo, fs, 0)

			_, err := svc.Upload(ctx, tc.in)

			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, storedFiles(t, fs))
			_, statErr := os.Stat(filepath.Join(filepath.Dir(fs.Root()), "evil.jpg"))
			assert.True(t, os.IsNotExist(statErr))
			repo.AssertNotCalled(t, "ExistsByFilename", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Upload_OriginalNameMustBeValidRecord(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	fs := newTestStore(t)
	svc := NewService(repo, fs, 0)

	_, err := svc.Upload(ctx, uploadInput("my photo.jpg", "bytes", true))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, storedFiles(t, fs))
}

func TestService_Upload_TooLarge(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	fs := newTestStore(t)
	svc := NewService(repo, fs, 4)

	_, err := svc.Upload(ctx, uploadInput("big.png", "12345", false))

	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, storedFiles(t, fs))
}

func TestService_Upload_OriginalNameConflictStillOverwritesFile(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	fs := newTestStore(t)
	svc := NewService(repo, fs, 0)

	repo.On("ExistsByFilename", ctx, "photo.jpg").Return(false, nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	repo.On("ExistsByFilename", ctx, "photo.jpg").Return(true, nil).Once()

	first, err := svc.Upload(ctx, uploadInput("photo.jpg", "first", true))
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", first.StoredFilename)

	_, err = svc.Upload(ctx, uploadInput("photo.jpg", "second", true))
	assert.ErrorIs(t, err, ErrDuplicateFilename)

	data, err := os.ReadFile(filepath.Join(fs.Root(), "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_Upload_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	svc := NewService(repo, newTestStore(t), 0)

	repo.On("ExistsByFilename", ctx, mock.Anything).Return(false, errors.New("db down"))

	_, err := svc.Upload(ctx, uploadInput("a.png", "x", false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestService_Open(t *testing.T) {
	fs := newTestStore(t)
	svc := NewService(new(mockPhotoRepo), fs, 0)
	_, err := fs.StoreOriginalName(bytes.NewReader([]byte("PNGDATA")), "pic.PNG")
	require.NoError(t, err)

	dl, err := svc.Open("pic.PNG")
	require.NoError(t, err)
	defer dl.Content.Close()
	assert.Equal(t, "image/png", dl.ContentType)
	assert.Equal(t, int64(7), dl.Size)

	_, err = svc.Open("missing.png")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, filestore.ErrFileNotFound)

	_, err = svc.Open("../pic.PNG")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, filestore.ErrFileNotFound)
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.jpg":   "image/jpeg",
		"a.JPEG":  "image/jpeg",
		"a.png":   "image/png",
		"a.gif":   "image/gif",
		"a.webp":  "image/webp",
		"a.heic":  "image/heic",
		"a.HEIC":  "image/heic",
		"a.bmp":   "application/octet-stream",
		"noext":   "application/octet-stream",
		"a.jpg.x": "application/octet-stream",
	}
	for name, want := range cases {
		assert.Equal(t, want, ContentTypeFor(name), name)
	}
}

func TestService_AuditAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := new(mockPhotoRepo)
	fs := newTestStore(t)
	svc := NewService(repo, fs, 0)

	for _, name := range []string{"kept.jpg", "orphan.png"} {
		_, err := fs.StoreOriginalName(strings.NewReader(name), name)
		require.NoError(t, err)
	}
	repo.On("List", ctx).Return([]Photo{{ID: 1, Filename: "kept.jpg"}, {ID: 2, Filename: "gone.gif"}}, nil)

	report, err := svc.Audit(ctx)
	require.NoError(t, err)
	require.Len(t, report.OrphanFiles, 1)
	assert.Equal(t, "orphan.png", report.OrphanFiles[0].Name)
	require.Len(t, report.MissingFiles, 1)
	assert.Equal(t, "gone.gif", report.MissingFiles[0].Filename)

	removed, err := svc.PruneOrphanFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"orphan.png"}, removed)
	assert.Equal(t, []string{"kept.jpg"}, storedFiles(t, fs))
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestService_ImportDirectory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(newTestDB(t)), newTestStore(t), 0)
	fs := svc.files.(*filestore.FileStore)

	for _, name := range []string{"a.jpg", "b.PNG", "notes.txt", "with space.jpg"} {
		_, err := fs.StoreOriginalName(strings.NewReader("x"), name)
		require.NoError(t, err)
	}

	added, err := svc.ImportDirectory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.PNG"}, added)

	again, err := svc.ImportDirectory(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	photos, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, photos, 2)
}
