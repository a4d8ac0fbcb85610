package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/atriumhq/atrium_backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(
	api fiber.Router,
	h *handler.ContactHandler,
	submitLimiter fiber.Handler,
) {
	api.Get("/contact/challenge", h.Challenge)
	api.Post("/contact", h.Submit, submitLimiter)
}
