package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/atriumhq/atrium_backend/internal/service/blog"
)

// BlogHandler serves the public read-only blog surface.
type BlogHandler struct {
	svc blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// GET /blog/posts
func (h *BlogHandler) ListPosts(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	posts, err := h.svc.ListPublished(c.Context(), c.Query("category"), limit)
	if err != nil {
		return internalError(c)
	}
	return ok(c, posts)
}

// GET /blog/posts/:slug
func (h *BlogHandler) GetPost(c fiber.Ctx) error {
	post, err := h.svc.GetPublishedBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, post)
}

// GET /blog/categories
func (h *BlogHandler) ListCategories(c fiber.Ctx) error {
	cats, err := h.svc.PublishedCategories(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, cats)
}
