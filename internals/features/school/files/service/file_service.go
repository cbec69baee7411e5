package service

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/files/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type Options struct {
	Dir          string
	MaxBytes     int
	ImageToWebP  bool
	ImageMaxWide int
}

type FileService struct {
	lc   *lifecycle.Manager[model.FileModel]
	opts Options
}

func NewFileService(db *gorm.DB, opts Options) *FileService {
	if opts.Dir == "" {
		opts.Dir = "uploads"
	}
	return &FileService{
		lc:   lifecycle.New[model.FileModel](db, "file", lifecycle.WithOrder("uploaded_at DESC")),
		opts: opts,
	}
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename drops any directory part and replaces unsafe runs with "_".
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	if len(name) > 200 {
		ext := filepath.Ext(name)
		name = name[:200-len(ext)] + ext
	}
	return name
}

func uniqueFilename(tx *gorm.DB, f *model.FileModel) error {
	var n int64
	if err := tx.Model(&model.FileModel{}).Where("filename = ?", f.Filename).Count(&n).Error; err != nil {
		return pkgerrors.Wrap(err, "check filename")
	}
	if n > 0 {
		return helper.Conflict("File %s already exists", f.Filename)
	}
	return nil
}

// Upload stores data on disk and records its metadata.
func (s *FileService) Upload(ctx context.Context, name string, data []byte, uploadedBy *uuid.UUID) (*model.FileModel, error) {
	name = SanitizeFilename(name)
	if name == "" {
		return nil, helper.InvalidField("file", "filename is required")
	}
	if len(data) == 0 {
		return nil, helper.InvalidField("file", "is empty")
	}
	if s.opts.MaxBytes > 0 && len(data) > s.opts.MaxBytes {
		return nil, helper.InvalidField("file", "is too large")
	}

	if s.opts.ImageToWebP && helper.IsConvertibleImage(data) {
		converted, err := helper.ConvertToWebP(data, helper.WebPOptions{MaxWidth: s.opts.ImageMaxWide})
		if err != nil {
			log.Printf("[WARN] webp conversion of %s failed, storing original: %v", name, err)
		} else {
			data, name = converted, helper.WebPName(name)
		}
	}

	// Each upload gets its own path on disk; Filename stays the lookup key.
	id := uuid.New()
	f := &model.FileModel{
		ID:          id,
		Filename:    name,
		Filepath:    filepath.Join(s.opts.Dir, id.String()+"_"+name),
		ContentType: http.DetectContentType(data),
		Kind:        constants.DetectFileTypeFromExt(name),
		Size:        int64(len(data)),
		UploadedBy:  uploadedBy,
	}
	if strings.HasSuffix(name, ".webp") {
		f.ContentType = "image/webp"
	}

	if err := writeAtomic(s.opts.Dir, f.Filepath, data); err != nil {
		return nil, err
	}
	if err := s.lc.Create(ctx, f, uniqueFilename); err != nil {
		_ = os.Remove(f.Filepath)
		return nil, err
	}
	log.Printf("[INFO] file %s stored (%d bytes)", f.Filename, f.Size)
	return f, nil
}

// writeAtomic writes through a temp file in dir so a reader never sees a partial upload.
func writeAtomic(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkgerrors.Wrap(err, "create upload dir")
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return pkgerrors.Wrap(err, "create temp upload")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return pkgerrors.Wrap(err, "write upload")
	}
	if err := tmp.Close(); err != nil {
		return pkgerrors.Wrap(err, "close upload")
	}
	return pkgerrors.Wrap(os.Rename(tmp.Name(), path), "store upload")
}

func (s *FileService) List(ctx context.Context, p helper.Paging) ([]model.FileModel, int64, error) {
	return s.lc.List(ctx, p)
}

// Open resolves a live file by name and checks the bytes are still on disk.
func (s *FileService) Open(ctx context.Context, filename string) (*model.FileModel, error) {
	name := SanitizeFilename(filename)
	var f model.FileModel
	err := s.lc.DB().WithContext(ctx).Where("filename = ?", name).First(&f).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("File not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find file")
	}
	if _, err := os.Stat(f.Filepath); err != nil {
		return nil, helper.NotFound("File not found")
	}
	return &f, nil
}

// Delete soft-deletes the record. The bytes stay on disk.
func (s *FileService) Delete(ctx context.Context, id uuid.UUID) (*model.FileModel, error) {
	return s.lc.SoftDelete(ctx, id)
}
