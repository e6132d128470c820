package handlers

import (
	"time"

	"agenda.link/middlewares"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler exposes the appointment booking endpoints.
type AppointmentHandler struct {
	service services.IAppointmentService
}

func NewAppointmentHandler(service services.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	ProviderID uint      `json:"provider_id"`
	Date       time.Time `json:"date"`
}

// Index lists the authenticated client's active appointments.
// GET /appointments?page=N
func (h *AppointmentHandler) Index(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	page := c.QueryInt("page", 1)

	appointments, err := h.service.List(c.UserContext(), userID, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointments)
}

// Store books a slot with a provider.
// POST /appointments {provider_id, date}
func (h *AppointmentHandler) Store(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, services.ErrInvalidInput)
	}

	appointment, err := h.service.Create(c.UserContext(), userID, req.ProviderID, req.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}

// Delete cancels the authenticated client's appointment.
// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fail(c, services.ErrInvalidInput)
	}

	appointment, err := h.service.Cancel(c.UserContext(), userID, uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}
