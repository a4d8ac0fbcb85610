package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/atriumhq/atrium_backend/internal/service/contact"
	"github.com/atriumhq/atrium_backend/pkg/captcha"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// GET /contact/challenge
func (h *ContactHandler) Challenge(c fiber.Ctx) error {
	ch, err := h.svc.Challenge(c.Context())
	if err != nil {
		if errors.Is(err, captcha.ErrNotConfigured) {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Configuration error"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Internal server error"})
	}
	// The widget consumes the challenge document as-is, so no envelope.
	return c.JSON(ch)
}

type submitContactRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Altcha  string `json:"altcha"`
}

// POST /contact
//
// The response bodies are a published contract with the landing-site form;
// the wording and casing must not drift.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid input",
			"details": []string{"invalid request body"},
		})
	}

	err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Altcha:  req.Altcha,
	})
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid input",
				"details": verr.Fields,
			})
		case errors.Is(err, captcha.ErrNotConfigured):
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Configuration error"})
		case errors.Is(err, contact.ErrCaptchaRejected):
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Captcha expired or invalid, please try again."})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Internal server error"})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
