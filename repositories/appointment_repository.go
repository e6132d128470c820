package repositories

import (
	"context"
	"time"

	"agenda.link/configs/configslog"
	"agenda.link/models"
	"agenda.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAppointmentRepository is the appointment store consumed by the
// services.
type IAppointmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindActiveBySlot(ctx context.Context, providerID uint, date time.Time) (*models.Appointment, error)
	FindActiveByUserPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Appointment, int64, error)
	FindActiveByProviderBetween(ctx context.Context, providerID uint, from, to time.Time) ([]models.Appointment, error)
	CreateWithNotification(ctx context.Context, appointment *models.Appointment, notification *models.Notification) error
	Save(ctx context.Context, appointment *models.Appointment) error
}

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{db: db}
}

// FindByID loads the appointment with both parties; the cancellation
// mail needs provider name/email and client name.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("User").
		First(&appointment, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindActiveBySlot(ctx context.Context, providerID uint, date time.Time) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND date = ? AND canceled_at IS NULL", providerID, date).
		First(&appointment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindActiveByUserPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	db := r.db.WithContext(ctx)

	query := db.Model(&models.Appointment{}).
		Where("user_id = ? AND canceled_at IS NULL", userID)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.FindActiveByUserPaginated: count failed",
			zap.Uint("userID", userID), zap.Error(err))
		return nil, 0, err
	}

	var appointments []models.Appointment
	if totalCount == 0 {
		return appointments, 0, nil
	}

	err := query.
		Preload("Provider.Avatar").
		Preload("Provider", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar_id")
		}).
		Order("date ASC").
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindActiveByUserPaginated: query failed",
			zap.Uint("userID", userID), zap.Error(err))
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

func (r *AppointmentRepository) FindActiveByProviderBetween(ctx context.Context, providerID uint, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND canceled_at IS NULL AND date BETWEEN ? AND ?", providerID, from, to).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("date ASC").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindActiveByProviderBetween: query failed",
			zap.Uint("providerID", providerID), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// CreateWithNotification persists the appointment and the provider's
// notification in one transaction. The partial unique index on
// (provider_id, date) for active rows turns a lost race into
// ErrDuplicate instead of a double booking.
func (r *AppointmentRepository) CreateWithNotification(ctx context.Context, appointment *models.Appointment, notification *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(appointment).Error; err != nil {
			return err
		}
		return tx.Create(notification).Error
	})
	return translate(err)
}

func (r *AppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	return translate(r.db.WithContext(ctx).Save(appointment).Error)
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
