package services

import (
	"context"
	"errors"
	"time"

	"agenda.link/models"
	"agenda.link/repositories"
)

// IScheduleService shows a provider its own agenda for a day.
type IScheduleService interface {
	DaySchedule(ctx context.Context, providerUserID uint, day time.Time) ([]models.Appointment, error)
}

type ScheduleService struct {
	appointments repositories.IAppointmentRepository
	users        repositories.IUserRepository
}

func NewScheduleService(appointments repositories.IAppointmentRepository, users repositories.IUserRepository) IScheduleService {
	return &ScheduleService{appointments: appointments, users: users}
}

// DaySchedule returns the provider's active appointments for the day,
// earliest first, with the booking client attached. Only provider
// accounts have a schedule.
func (s *ScheduleService) DaySchedule(ctx context.Context, providerUserID uint, day time.Time) ([]models.Appointment, error) {
	if _, err := s.users.FindProviderByID(ctx, providerUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotProvider
		}
		return nil, ErrInternal
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	appointments, err := s.appointments.FindActiveByProviderBetween(ctx, providerUserID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrInternal
	}
	return appointments, nil
}

var _ IScheduleService = (*ScheduleService)(nil)
