package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium_backend/internal/service/contact"
)

// HeaderAdminEmail carries the acting staff member's address, set by the
// admin frontend from its own session. It becomes the Reply-To of outbound
// reply emails.
const HeaderAdminEmail = "X-Admin-Email"

type InquiryHandler struct {
	svc contact.Service
}

func NewInquiryHandler(svc contact.Service) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

func mapInquiryError(c fiber.Ctx, err error) error {
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid input",
			"details": verr.Fields,
		})
	case errors.Is(err, contact.ErrInquiryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, contact.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /admin/inquiries
func (h *InquiryHandler) List(c fiber.Ctx) error {
	inquiries, err := h.svc.List(c.Context())
	if err != nil {
		return mapInquiryError(c, err)
	}
	return ok(c, inquiries)
}

// GET /admin/inquiries/:id
func (h *InquiryHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inquiry id")
	}

	inq, replies, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapInquiryError(c, err)
	}

	return ok(c, fiber.Map{
		"inquiry": inq,
		"replies": replies,
	})
}

// PATCH /admin/inquiries/:id/status
func (h *InquiryHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inquiry id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inq, err := h.svc.UpdateStatus(c.Context(), id, contact.Status(body.Status))
	if err != nil {
		return mapInquiryError(c, err)
	}
	return ok(c, inq)
}

// POST /admin/inquiries/:id/reply
func (h *InquiryHandler) Reply(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inquiry id")
	}

	sentBy := c.Get(HeaderAdminEmail)
	if sentBy == "" {
		return badRequest(c, "Missing admin email")
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Reply(c.Context(), id, contact.ReplyRequest{
		Message: body.Message,
		SentBy:  sentBy,
	})
	if err != nil {
		return mapInquiryError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"replyId":   res.ReplyID,
		"messageId": res.MessageID,
	})
}
