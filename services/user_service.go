package services

import (
	"context"
	"errors"
	"strings"

	"agenda.link/configs/configslog"
	"agenda.link/models"
	"agenda.link/repositories"

	"go.uber.org/zap"
)

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Provider bool
}

// UpdateProfileInput carries a profile update. Password fields are
// optional; changing the password requires the current one.
type UpdateProfileInput struct {
	Name        string
	Email       string
	OldPassword string
	Password    string
	AvatarID    *uint
}

// IUserService manages accounts, credentials and the provider listing.
type IUserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error)
	ListProviders(ctx context.Context) ([]models.User, error)
}

type UserService struct {
	users repositories.IUserRepository
	files repositories.IFileRepository
}

func NewUserService(users repositories.IUserRepository, files repositories.IFileRepository) IUserService {
	return &UserService{users: users, files: files}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" || input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, ErrInvalidInput
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Error("UserService.Register: email lookup failed", zap.Error(err))
		return nil, ErrInternal
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Provider: input.Provider,
	}
	if err := user.SetPassword(input.Password); err != nil {
		configslog.Log.Error("UserService.Register: password hash failed", zap.Error(err))
		return nil, ErrInternal
	}

	if err := s.users.Create(ctx, user); err != nil {
		// unique index on email catches a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		configslog.Log.Error("UserService.Register: create failed", zap.Error(err))
		return nil, ErrInternal
	}

	configslog.SLog.Infof("user %d registered (provider=%t)", user.ID, user.Provider)
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}

	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" && email != user.Email {
		if !strings.Contains(email, "@") {
			return nil, ErrInvalidInput
		}
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInternal
		}
		user.Email = email
	}

	if input.Password != "" {
		if len(input.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		if !user.CheckPassword(input.OldPassword) {
			return nil, ErrPasswordMismatch
		}
		if err := user.SetPassword(input.Password); err != nil {
			return nil, ErrInternal
		}
	}

	if input.AvatarID != nil {
		if _, err := s.files.FindByID(ctx, *input.AvatarID); err != nil {
			return nil, ErrInvalidInput
		}
		user.AvatarID = input.AvatarID
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		configslog.Log.Error("UserService.UpdateProfile: update failed",
			zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrInternal
	}

	return s.GetByID(ctx, userID)
}

// ListProviders returns every provider account with its avatar, for the
// client-side provider picker.
func (s *UserService) ListProviders(ctx context.Context) ([]models.User, error) {
	providers, err := s.users.FindAllProviders(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return providers, nil
}

var _ IUserService = (*UserService)(nil)
