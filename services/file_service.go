package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"agenda.link/configs/configslog"
	"agenda.link/models"
	"agenda.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IFileService stores uploaded avatar images.
type IFileService interface {
	SaveAvatar(ctx context.Context, originalName string, content io.Reader) (*models.File, error)
}

type FileService struct {
	files     repositories.IFileRepository
	uploadDir string
}

func NewFileService(files repositories.IFileRepository, uploadDir string) IFileService {
	return &FileService{files: files, uploadDir: uploadDir}
}

// SaveAvatar writes the upload under a uuid-prefixed name so concurrent
// uploads of the same filename never collide, then records it.
func (s *FileService) SaveAvatar(ctx context.Context, originalName string, content io.Reader) (*models.File, error) {
	originalName = filepath.Base(originalName)
	if originalName == "" || originalName == "." {
		return nil, ErrInvalidInput
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		configslog.Log.Error("FileService.SaveAvatar: upload dir unavailable", zap.Error(err))
		return nil, ErrInternal
	}

	storedName := uuid.NewString() + filepath.Ext(originalName)
	storedPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		configslog.Log.Error("FileService.SaveAvatar: create failed",
			zap.String("path", storedPath), zap.Error(err))
		return nil, ErrInternal
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		configslog.Log.Error("FileService.SaveAvatar: write failed",
			zap.String("path", storedPath), zap.Error(err))
		_ = os.Remove(storedPath)
		return nil, ErrInternal
	}

	file := &models.File{Name: originalName, Path: storedName}
	if err := s.files.Create(ctx, file); err != nil {
		_ = os.Remove(storedPath)
		return nil, ErrInternal
	}
	file.URL = models.FileURL(file.Path)
	return file, nil
}

var _ IFileService = (*FileService)(nil)
