package handlers

import (
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// ProviderHandler lists bookable providers.
type ProviderHandler struct {
	users services.IUserService
}

func NewProviderHandler(users services.IUserService) *ProviderHandler {
	return &ProviderHandler{users: users}
}

// Index returns every provider with its avatar.
// GET /providers
func (h *ProviderHandler) Index(c *fiber.Ctx) error {
	providers, err := h.users.ListProviders(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(providers)
}
