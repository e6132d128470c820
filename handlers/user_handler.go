package handlers

import (
	"agenda.link/middlewares"
	"agenda.link/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler covers registration and profile updates.
type UserHandler struct {
	users services.IUserService
}

func NewUserHandler(users services.IUserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Provider bool   `json:"provider"`
}

type updateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	Password    string `json:"password"`
	AvatarID    *uint  `json:"avatar_id"`
}

// Store registers a new account.
// POST /users {name, email, password, provider}
func (h *UserHandler) Store(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, services.ErrInvalidInput)
	}

	user, err := h.users.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Provider: req.Provider,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update changes the authenticated user's profile.
// PUT /users
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, services.ErrInvalidInput)
	}

	user, err := h.users.UpdateProfile(c.UserContext(), userID, services.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		OldPassword: req.OldPassword,
		Password:    req.Password,
		AvatarID:    req.AvatarID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
