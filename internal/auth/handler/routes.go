package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/auth/create", h.Register)
	app.Post("/auth/login", h.Login)
	app.Get("/auth/status", h.Status)
	app.Post("/auth/logout", h.Logout)

	// Administrative removal; no cascade to the linked address.
	app.Delete("/auth/users/:id", h.Remove)
}
