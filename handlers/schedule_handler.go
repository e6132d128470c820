package handlers

import (
	"time"

	"agenda.link/middlewares"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler shows providers their own agenda.
type ScheduleHandler struct {
	schedule services.IScheduleService
}

func NewScheduleHandler(schedule services.IScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// Index lists the authenticated provider's appointments for a day.
// GET /schedules?date=RFC3339
func (h *ScheduleHandler) Index(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fail(c, services.ErrInvalidInput)
		}
		day = parsed
	}

	appointments, err := h.schedule.DaySchedule(c.UserContext(), userID, day)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointments)
}
