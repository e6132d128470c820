package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agenda.link/configs/configslog"
	"agenda.link/jobs"
	"agenda.link/models"
	"agenda.link/pkg/ptbr"
	"agenda.link/pkg/queryparams"
	"agenda.link/repositories"

	"go.uber.org/zap"
)

// Enqueuer submits a background job without waiting for its result.
type Enqueuer interface {
	Enqueue(kind string, payload any)
}

// IAppointmentService books and cancels provider slots.
type IAppointmentService interface {
	List(ctx context.Context, userID uint, page int) ([]models.Appointment, error)
	Create(ctx context.Context, userID, providerID uint, date time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error)
}

type AppointmentService struct {
	appointments repositories.IAppointmentRepository
	users        repositories.IUserRepository
	queue        Enqueuer

	now func() time.Time
}

func NewAppointmentService(appointments repositories.IAppointmentRepository, users repositories.IUserRepository, queue Enqueuer) IAppointmentService {
	return &AppointmentService{
		appointments: appointments,
		users:        users,
		queue:        queue,
		now:          time.Now,
	}
}

// List returns the client's active appointments, oldest slot first, 20
// per page, with provider id, name and avatar attached.
func (s *AppointmentService) List(ctx context.Context, userID uint, page int) ([]models.Appointment, error) {
	params := queryparams.ListParams{Page: page, PerPage: queryparams.DefaultPerPage}
	params.Validate()

	appointments, _, err := s.appointments.FindActiveByUserPaginated(ctx, userID, params)
	if err != nil {
		return nil, ErrInternal
	}
	return appointments, nil
}

// Create books a one-hour slot. The check order is part of the
// contract: shape, provider existence, slot freshness, slot conflict,
// self-booking. Only then side effects run.
func (s *AppointmentService) Create(ctx context.Context, userID, providerID uint, date time.Time) (*models.Appointment, error) {
	if providerID == 0 || date.IsZero() {
		return nil, ErrInvalidInput
	}

	provider, err := s.users.FindProviderByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		configslog.Log.Error("AppointmentService.Create: provider lookup failed",
			zap.Uint("providerID", providerID), zap.Error(err))
		return nil, ErrInternal
	}

	slot := startOfHour(date)
	if slot.Before(s.now()) {
		return nil, ErrPastDate
	}

	if _, err := s.appointments.FindActiveBySlot(ctx, providerID, slot); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Error("AppointmentService.Create: slot lookup failed",
			zap.Uint("providerID", providerID), zap.Time("slot", slot), zap.Error(err))
		return nil, ErrInternal
	}

	if userID == providerID {
		return nil, ErrSelfBooking
	}

	client, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	appointment := &models.Appointment{
		UserID:     userID,
		ProviderID: providerID,
		Date:       slot,
	}
	notification := &models.Notification{
		UserID:  provider.ID,
		Content: fmt.Sprintf("Novo agendamento de %s para %s", client.Name, ptbr.FormatLong(slot)),
	}

	// The partial unique index on active (provider_id, date) closes the
	// window between the conflict check above and this insert.
	if err := s.appointments.CreateWithNotification(ctx, appointment, notification); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		configslog.Log.Error("AppointmentService.Create: persist failed",
			zap.Uint("userID", userID), zap.Uint("providerID", providerID), zap.Error(err))
		return nil, ErrInternal
	}

	configslog.SLog.Infof("appointment %d booked: user %d with provider %d at %s",
		appointment.ID, userID, providerID, slot.Format(time.RFC3339))

	appointment.ComputeFlags(s.now())
	return appointment, nil
}

// Cancel marks an active appointment canceled and hands the
// notification mail to the queue. An appointment already canceled is no
// longer active and reads as not found.
func (s *AppointmentService) Cancel(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		configslog.Log.Error("AppointmentService.Cancel: lookup failed",
			zap.Uint("appointmentID", appointmentID), zap.Error(err))
		return nil, ErrInternal
	}
	if !appointment.Active() {
		return nil, ErrAppointmentNotFound
	}

	if appointment.UserID != userID {
		return nil, ErrNotOwner
	}

	if appointment.Date.Add(-models.CancelWindow).Before(s.now()) {
		return nil, ErrCancelWindowExpired
	}

	now := s.now()
	appointment.CanceledAt = &now
	if err := s.appointments.Save(ctx, appointment); err != nil {
		configslog.Log.Error("AppointmentService.Cancel: save failed",
			zap.Uint("appointmentID", appointmentID), zap.Error(err))
		return nil, ErrInternal
	}

	// Fire-and-forget: the request does not wait for, or learn about,
	// mail delivery.
	s.queue.Enqueue(jobs.CancellationMailKind, jobs.CancellationMailPayload{Appointment: appointment})

	configslog.SLog.Infof("appointment %d canceled by user %d", appointmentID, userID)

	appointment.ComputeFlags(s.now())
	return appointment, nil
}

// startOfHour truncates t to the top of its hour in its own location.
func startOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

var _ IAppointmentService = (*AppointmentService)(nil)
