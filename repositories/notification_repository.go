package repositories

import (
	"context"

	"agenda.link/configs/configslog"
	"agenda.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// INotificationRepository is the notification store consumed by the
// services.
type INotificationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Notification, error)
	FindAllByUser(ctx context.Context, userID uint) ([]models.Notification, error)
	Save(ctx context.Context, notification *models.Notification) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) INotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) FindAllByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		configslog.Log.Error("NotificationRepository.FindAllByUser: query failed",
			zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	return translate(r.db.WithContext(ctx).Save(notification).Error)
}

var _ INotificationRepository = (*NotificationRepository)(nil)
