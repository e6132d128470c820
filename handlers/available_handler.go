package handlers

import (
	"time"

	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// AvailableHandler exposes a provider's free hours.
type AvailableHandler struct {
	availability services.IAvailabilityService
}

func NewAvailableHandler(availability services.IAvailabilityService) *AvailableHandler {
	return &AvailableHandler{availability: availability}
}

// Index lists the hour grid of a provider's day.
// GET /providers/:providerId/available?date=RFC3339
func (h *AvailableHandler) Index(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil || providerID < 1 {
		return fail(c, services.ErrInvalidInput)
	}

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		day, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fail(c, services.ErrInvalidInput)
		}
	}

	slots, err := h.availability.DayAvailability(c.UserContext(), uint(providerID), day)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(slots)
}
