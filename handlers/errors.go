package handlers

import (
	"errors"

	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the service error taxonomy to HTTP statuses: 400 for
// malformed input and conflicts, 401 for authorization and time-policy
// violations, 404 for missing resources.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrSlotTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPasswordTooShort):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrProviderNotFound),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrSelfBooking),
		errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrCancelWindowExpired),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrNotProvider):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrAppointmentNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}
