package handlers

import (
	"agenda.link/pkg/token"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler issues bearer tokens.
type SessionHandler struct {
	users  services.IUserService
	secret string
}

func NewSessionHandler(users services.IUserService, secret string) *SessionHandler {
	return &SessionHandler{users: users, secret: secret}
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Store logs a user in.
// POST /sessions {email, password}
func (h *SessionHandler) Store(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, services.ErrInvalidInput)
	}

	user, err := h.users.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	tok, err := token.Make(user.ID, h.secret)
	if err != nil {
		return fail(c, services.ErrInternal)
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": tok,
	})
}
