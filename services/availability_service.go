package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agenda.link/repositories"
)

// workday is the bookable hour grid every provider offers.
var workday = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

// Slot is one bookable hour of a provider's day.
type Slot struct {
	Time      string    `json:"time"`
	Value     time.Time `json:"value"`
	Available bool      `json:"available"`
}

// IAvailabilityService lists a provider's free hours for a day.
type IAvailabilityService interface {
	DayAvailability(ctx context.Context, providerID uint, day time.Time) ([]Slot, error)
}

type AvailabilityService struct {
	appointments repositories.IAppointmentRepository
	users        repositories.IUserRepository

	now func() time.Time
}

func NewAvailabilityService(appointments repositories.IAppointmentRepository, users repositories.IUserRepository) IAvailabilityService {
	return &AvailabilityService{
		appointments: appointments,
		users:        users,
		now:          time.Now,
	}
}

// DayAvailability marks each workday hour of the given day available
// unless it is already booked or no longer in the future.
func (s *AvailabilityService) DayAvailability(ctx context.Context, providerID uint, day time.Time) ([]Slot, error) {
	if _, err := s.users.FindProviderByID(ctx, providerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, ErrInternal
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	booked, err := s.appointments.FindActiveByProviderBetween(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrInternal
	}
	taken := make(map[int]bool, len(booked))
	for _, appointment := range booked {
		taken[appointment.Date.In(day.Location()).Hour()] = true
	}

	now := s.now()
	slots := make([]Slot, 0, len(workday))
	for _, hour := range workday {
		value := dayStart.Add(time.Duration(hour) * time.Hour)
		slots = append(slots, Slot{
			Time:      fmt.Sprintf("%02d:00", hour),
			Value:     value,
			Available: value.After(now) && !taken[hour],
		})
	}
	return slots, nil
}

var _ IAvailabilityService = (*AvailabilityService)(nil)
