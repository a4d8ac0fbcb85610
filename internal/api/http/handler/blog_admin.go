package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium_backend/internal/service/blog"
)

// BlogAdminHandler covers the staff-side post and category management.
type BlogAdminHandler struct {
	svc blog.Service
}

func NewBlogAdminHandler(svc blog.Service) *BlogAdminHandler {
	return &BlogAdminHandler{svc: svc}
}

func mapBlogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, blog.ErrPostNotFound),
		errors.Is(err, blog.ErrCategoryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, blog.ErrEmptyTitle),
		errors.Is(err, blog.ErrEmptyContent),
		errors.Is(err, blog.ErrInvalidSlug),
		errors.Is(err, blog.ErrReservedSlug),
		errors.Is(err, blog.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, blog.ErrSlugTaken),
		errors.Is(err, blog.ErrCategoryExists),
		errors.Is(err, blog.ErrCategoryInUse):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /admin/blog/posts
func (h *BlogAdminHandler) ListPosts(c fiber.Ctx) error {
	posts, err := h.svc.ListPosts(c.Context())
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /admin/blog/posts/:id
func (h *BlogAdminHandler) GetPost(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	post, err := h.svc.GetPost(c.Context(), id)
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, post)
}

type postRequest struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         string  `json:"content"`
	Excerpt         *string `json:"excerpt"`
	BannerURL       *string `json:"bannerUrl"`
	OgImageURL      *string `json:"ogImageUrl"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription string  `json:"metaDescription"`
	Status          string  `json:"status"`
	CategoryID      string  `json:"categoryId"`
}

// POST /admin/blog/posts
func (h *BlogAdminHandler) CreatePost(c fiber.Ctx) error {
	var body postRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Content == "" {
		return badRequest(c, "title and content are required")
	}

	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	author := c.Get(HeaderAdminEmail)
	if author == "" {
		return badRequest(c, "Missing admin email")
	}

	post, err := h.svc.CreatePost(c.Context(), blog.CreatePostInput{
		Title:           body.Title,
		Slug:            body.Slug,
		Content:         body.Content,
		Excerpt:         body.Excerpt,
		BannerURL:       body.BannerURL,
		OgImageURL:      body.OgImageURL,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		Status:          body.Status,
		Author:          author,
		CategoryID:      categoryID,
	})
	if err != nil {
		return mapBlogError(c, err)
	}
	return created(c, post)
}

type postUpdateRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	BannerURL       *string `json:"bannerUrl"`
	OgImageURL      *string `json:"ogImageUrl"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Status          *string `json:"status"`
	CategoryID      *string `json:"categoryId"`
}

// PATCH /admin/blog/posts/:id
func (h *BlogAdminHandler) UpdatePost(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body postUpdateRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	in := blog.UpdatePostInput{
		Title:           body.Title,
		Slug:            body.Slug,
		Content:         body.Content,
		Excerpt:         body.Excerpt,
		BannerURL:       body.BannerURL,
		OgImageURL:      body.OgImageURL,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		Status:          body.Status,
	}
	if body.CategoryID != nil {
		cid, err := uuid.Parse(*body.CategoryID)
		if err != nil {
			return badRequest(c, "invalid category id")
		}
		in.CategoryID = &cid
	}

	post, err := h.svc.UpdatePost(c.Context(), id, in)
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, post)
}

// DELETE /admin/blog/posts/:id
func (h *BlogAdminHandler) DeletePost(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	if err := h.svc.DeletePost(c.Context(), id); err != nil {
		return mapBlogError(c, err)
	}
	return noContent(c)
}

type categoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sortOrder"`
}

// GET /admin/blog/categories
func (h *BlogAdminHandler) ListCategories(c fiber.Ctx) error {
	cats, err := h.svc.ListCategories(c.Context())
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, cats)
}

// POST /admin/blog/categories
func (h *BlogAdminHandler) CreateCategory(c fiber.Ctx) error {
	var body categoryRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	cat, err := h.svc.CreateCategory(c.Context(), blog.CategoryInput{
		Name:      body.Name,
		Slug:      body.Slug,
		SortOrder: body.SortOrder,
	})
	if err != nil {
		return mapBlogError(c, err)
	}
	return created(c, cat)
}

// PUT /admin/blog/categories/:id
func (h *BlogAdminHandler) UpdateCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var body categoryRequest
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" || body.Slug == "" {
		return badRequest(c, "name and slug are required")
	}

	cat, err := h.svc.UpdateCategory(c.Context(), id, blog.CategoryInput{
		Name:      body.Name,
		Slug:      body.Slug,
		SortOrder: body.SortOrder,
	})
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, cat)
}

// DELETE /admin/blog/categories/:id
func (h *BlogAdminHandler) DeleteCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	if err := h.svc.DeleteCategory(c.Context(), id); err != nil {
		return mapBlogError(c, err)
	}
	return noContent(c)
}
