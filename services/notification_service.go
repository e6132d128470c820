package services

import (
	"context"
	"errors"

	"agenda.link/models"
	"agenda.link/repositories"
)

// INotificationService lists a provider's notifications and marks them
// read.
type INotificationService interface {
	List(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error)
}

type NotificationService struct {
	notifications repositories.INotificationRepository
	users         repositories.IUserRepository
}

func NewNotificationService(notifications repositories.INotificationRepository, users repositories.IUserRepository) INotificationService {
	return &NotificationService{notifications: notifications, users: users}
}

// List returns the provider's notifications, newest first. Clients have
// none; only provider accounts may ask.
func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	if _, err := s.users.FindProviderByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotProvider
		}
		return nil, ErrInternal
	}

	notifications, err := s.notifications.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, ErrInternal
	}
	if notification.UserID != userID {
		return nil, ErrNotificationNotFound
	}

	if !notification.Read {
		notification.Read = true
		if err := s.notifications.Save(ctx, notification); err != nil {
			return nil, ErrInternal
		}
	}
	return notification, nil
}

var _ INotificationService = (*NotificationService)(nil)
