package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/atriumhq/atrium_backend/internal/api/http/handler"
)

func (r *Router) registerInquiryRoutes(admin fiber.Router, h *handler.InquiryHandler) {
	inquiries := admin.Group("/inquiries")

	inquiries.Get("/", h.List)

	i := inquiries.Group("/:id")
	i.Get("/", h.Get)
	i.Patch("/status", h.UpdateStatus)
	i.Post("/reply", h.Reply)
}
