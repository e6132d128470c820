package routes

import (
	"agenda.link/handlers"
	"agenda.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Session      *handlers.SessionHandler
	User         *handlers.UserHandler
	File         *handlers.FileHandler
	Provider     *handlers.ProviderHandler
	Available    *handlers.AvailableHandler
	Appointment  *handlers.AppointmentHandler
	Schedule     *handlers.ScheduleHandler
	Notification *handlers.NotificationHandler
}

// SetupRoutes mounts global middleware, the open routes and the
// authenticated API.
func SetupRoutes(app *fiber.App, h Handlers, jwtSecret, uploadDir string) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	// uploaded avatars
	app.Static("/files", uploadDir)

	// open routes, rate limited against credential stuffing
	limiter := middlewares.NewRateLimiter(5, 10).Handler()
	app.Post("/users", limiter, h.User.Store)
	app.Post("/sessions", limiter, h.Session.Store)

	// everything below requires a bearer token
	api := app.Group("", middlewares.Auth(jwtSecret))

	api.Put("/users", h.User.Update)
	api.Post("/files", h.File.Store)

	api.Get("/providers", h.Provider.Index)
	api.Get("/providers/:providerId/available", h.Available.Index)

	api.Get("/appointments", h.Appointment.Index)
	api.Post("/appointments", h.Appointment.Store)
	api.Delete("/appointments/:id", h.Appointment.Delete)

	api.Get("/schedules", h.Schedule.Index)

	api.Get("/notifications", h.Notification.Index)
	api.Put("/notifications/:id", h.Notification.Update)

	// unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	})
}
