package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/atriumhq/atrium_backend/internal/api/http/handler"
)

func (r *Router) registerBlogRoutes(api fiber.Router, h *handler.BlogHandler) {
	posts := api.Group("/blog")

	posts.Get("/posts", h.ListPosts)
	posts.Get("/posts/:slug", h.GetPost)
	posts.Get("/categories", h.ListCategories)
}

func (r *Router) registerBlogAdminRoutes(admin fiber.Router, h *handler.BlogAdminHandler) {
	b := admin.Group("/blog")

	b.Get("/posts", h.ListPosts)
	b.Post("/posts", h.CreatePost)
	b.Get("/posts/:id", h.GetPost)
	b.Patch("/posts/:id", h.UpdatePost)
	b.Delete("/posts/:id", h.DeletePost)

	b.Get("/categories", h.ListCategories)
	b.Post("/categories", h.CreateCategory)
	b.Put("/categories/:id", h.UpdateCategory)
	b.Delete("/categories/:id", h.DeleteCategory)
}
