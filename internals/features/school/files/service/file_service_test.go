package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/files/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
	"ksms_backend/internals/testutil"
)

func newService(t *testing.T, opts Options) *FileService {
	t.Helper()
	if opts.Dir == "" {
		opts.Dir = t.TempDir()
	}
	return NewFileService(testutil.NewDB(t, &model.FileModel{}), opts)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":         "report.pdf",
		"../../etc/passwd":   "passwd",
		`C:\docs\plan 1.txt`: "plan_1.txt",
		"..":                 "",
		"  notes (v2).md ":   "notes_v2_.md",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestUpload_WritesAndRecords(t *testing.T) {
	svc := newService(t, Options{})
	ctx := context.Background()

	f, err := svc.Upload(ctx, "../timetable.txt", []byte("mon: maths"), nil)
	require.NoError(t, err)
	assert.Equal(t, "timetable.txt", f.Filename)
	assert.Equal(t, constants.FileKindText, f.Kind)
	assert.EqualValues(t, 10, f.Size)

	b, err := os.ReadFile(f.Filepath)
	require.NoError(t, err)
	assert.Equal(t, "mon: maths", string(b))

	opened, err := svc.Open(ctx, "timetable.txt")
	require.NoError(t, err)
	assert.Equal(t, f.ID, opened.ID)
}

func TestUpload_DuplicateNameConflicts(t *testing.T) {
	svc := newService(t, Options{})
	ctx := context.Background()

	first, err := svc.Upload(ctx, "a.txt", []byte("one"), nil)
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "a.txt", []byte("two"), nil)
	assert.True(t, errors.Is(err, helper.ErrConflict))

	entries, err := os.ReadDir(svc.opts.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "rejected upload leaves nothing behind")

	b, err := os.ReadFile(first.Filepath)
	require.NoError(t, err)
	assert.Equal(t, "one", string(b))
}

func TestUpload_Limits(t *testing.T) {
	svc := newService(t, Options{MaxBytes: 4})
	_, err := svc.Upload(context.Background(), "big.txt", []byte("12345"), nil)
	assert.True(t, errors.Is(err, helper.ErrValidation))

	_, err = svc.Upload(context.Background(), "empty.txt", nil, nil)
	assert.True(t, errors.Is(err, helper.ErrValidation))
}

func TestUpload_ConvertsImagesToWebP(t *testing.T) {
	svc := newService(t, Options{ImageToWebP: true, ImageMaxWide: 8})

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		img.Set(x, x, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	f, err := svc.Upload(context.Background(), "photo.png", buf.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, "photo.webp", f.Filename)
	assert.Equal(t, "image/webp", f.ContentType)
	assert.Equal(t, constants.FileKindImage, f.Kind)
}

func TestOpen_DeletedOrMissing(t *testing.T) {
	svc := newService(t, Options{})
	ctx := context.Background()

	_, err := svc.Open(ctx, "nothing.pdf")
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	f, err := svc.Upload(ctx, "gone.txt", []byte("x"), nil)
	require.NoError(t, err)
	_, err = svc.Delete(ctx, f.ID)
	require.NoError(t, err)
	_, err = svc.Open(ctx, "gone.txt")
	assert.True(t, errors.Is(err, helper.ErrNotFound))
}

func TestUpload_ReusedNameKeepsDeletedBytes(t *testing.T) {
	svc := newService(t, Options{})
	ctx := context.Background()

	old, err := svc.Upload(ctx, "plan.txt", []byte("original"), nil)
	require.NoError(t, err)
	_, err = svc.Delete(ctx, old.ID)
	require.NoError(t, err)

	fresh, err := svc.Upload(ctx, "plan.txt", []byte("replacement"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, old.Filepath, fresh.Filepath)
	assert.Equal(t, svc.opts.Dir, filepath.Dir(fresh.Filepath))

	deleted, err := svc.lc.Get(ctx, old.ID, lifecycle.IncludeDeleted())
	require.NoError(t, err)
	b, err := os.ReadFile(deleted.Filepath)
	require.NoError(t, err)
	assert.Equal(t, "original", string(b))

	opened, err := svc.Open(ctx, "plan.txt")
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, opened.ID)
	b, err = os.ReadFile(opened.Filepath)
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(b))
}
