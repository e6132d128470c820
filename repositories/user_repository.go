package repositories

import (
	"context"

	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository is the user store consumed by the services.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindProviderByID(ctx context.Context, id uint) (*models.User, error)
	FindAllProviders(ctx context.Context) ([]models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Avatar").First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindProviderByID only matches users carrying the provider flag.
func (r *UserRepository) FindProviderByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND provider = ?", id, true).
		First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindAllProviders(ctx context.Context) ([]models.User, error) {
	var providers []models.User
	err := r.db.WithContext(ctx).
		Where("provider = ?", true).
		Preload("Avatar").
		Order("name ASC").
		Find(&providers).Error
	if err != nil {
		configslog.Log.Error("UserRepository.FindAllProviders: query failed", zap.Error(err))
		return nil, err
	}
	return providers, nil
}

var _ IUserRepository = (*UserRepository)(nil)
