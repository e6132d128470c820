package handlers

import (
	"agenda.link/middlewares"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler lists and marks provider notifications.
type NotificationHandler struct {
	notifications services.INotificationService
}

func NewNotificationHandler(notifications services.INotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// Index lists the authenticated provider's notifications.
// GET /notifications
func (h *NotificationHandler) Index(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	notifications, err := h.notifications.List(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notifications)
}

// Update marks one notification read.
// PUT /notifications/:id
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fail(c, services.ErrInvalidInput)
	}

	notification, err := h.notifications.MarkRead(c.UserContext(), userID, uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notification)
}
