package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Get("/api/v1/validate", h.Validate)
	app.Post("/api/v1/forgot-password", h.ForgotPassword)
	app.Post("/api/v1/reset-password", h.ResetPassword)
}
