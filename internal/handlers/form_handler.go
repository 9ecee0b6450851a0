package handlers

import (
	"inventory/internal/forms"
	"inventory/internal/session"

	"github.com/gofiber/fiber/v2"
)

// FormHandler drives the add/edit product form.
type FormHandler struct {
	session *session.Session
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(s *session.Session) *FormHandler {
	return &FormHandler{session: s}
}

// RegisterRoutes registers the form routes.
func (h *FormHandler) RegisterRoutes(router fiber.Router) {
	formRoutes := router.Group("/form")
	formRoutes.Get("/", h.HandleGetForm)
	formRoutes.Post("/", h.HandleOpenForm)
	formRoutes.Patch("/", h.HandleEditForm)
	formRoutes.Delete("/", h.HandleCloseForm)
	formRoutes.Post("/submit", h.HandleSubmitForm)
}

// HandleGetForm returns the open form, if any.
func (h *FormHandler) HandleGetForm(c *fiber.Ctx) error {
	return c.JSON(h.session.Form())
}

// HandleOpenForm opens an empty form, or an edit form when product_id is given.
func (h *FormHandler) HandleOpenForm(c *fiber.Ctx) error {
	var req struct {
		ProductID *int `json:"product_id"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body", err)
		}
	}

	if req.ProductID == nil {
		return c.Status(fiber.StatusCreated).JSON(h.session.OpenCreateForm())
	}
	form, err := h.session.OpenEditForm(*req.ProductID)
	if err != nil {
		return respondError(c, err, "Could not open product form")
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// HandleEditForm applies field edits without validating them.
func (h *FormHandler) HandleEditForm(c *fiber.Ctx) error {
	var patch forms.Patch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	form, err := h.session.EditForm(patch)
	if err != nil {
		return respondError(c, err, "Could not edit product form")
	}
	return c.JSON(form)
}

// HandleCloseForm discards the open form.
func (h *FormHandler) HandleCloseForm(c *fiber.Ctx) error {
	h.session.CloseForm()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSubmitForm validates and saves the open form.
func (h *FormHandler) HandleSubmitForm(c *fiber.Ctx) error {
	editing := h.session.State().EditingID != nil
	product, err := h.session.SubmitForm()
	if err != nil {
		return respondError(c, err, "Could not save product")
	}
	status := fiber.StatusCreated
	if editing {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(product)
}
