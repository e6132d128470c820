package repositories

import (
	"context"

	"agenda.link/models"

	"gorm.io/gorm"
)

// IFileRepository is the uploaded-file store consumed by the services.
type IFileRepository interface {
	Create(ctx context.Context, file *models.File) error
	FindByID(ctx context.Context, id uint) (*models.File, error)
}

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) IFileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	return translate(r.db.WithContext(ctx).Create(file).Error)
}

func (r *FileRepository) FindByID(ctx context.Context, id uint) (*models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).First(&file, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &file, nil
}

var _ IFileRepository = (*FileRepository)(nil)
