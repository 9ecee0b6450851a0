package handlers

import (
	"inventory/internal/models"
	"inventory/internal/session"

	"github.com/gofiber/fiber/v2"
)

// ViewHandler handles search, paging and view mode changes.
type ViewHandler struct {
	session *session.Session
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(s *session.Session) *ViewHandler {
	return &ViewHandler{session: s}
}

// RegisterRoutes registers the view routes.
func (h *ViewHandler) RegisterRoutes(router fiber.Router) {
	viewRoutes := router.Group("/view")
	viewRoutes.Get("/", h.HandleGetState)
	viewRoutes.Put("/search", h.HandleSetSearch)
	viewRoutes.Put("/page", h.HandleSetPage)
	viewRoutes.Put("/mode", h.HandleSetMode)
}

// HandleGetState returns the view state.
func (h *ViewHandler) HandleGetState(c *fiber.Ctx) error {
	return c.JSON(h.session.State())
}

// HandleSetSearch updates the raw search text.
func (h *ViewHandler) HandleSetSearch(c *fiber.Ctx) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	h.session.SetQuery(req.Query)
	return c.JSON(h.session.State())
}

// HandleSetPage moves to another page.
func (h *ViewHandler) HandleSetPage(c *fiber.Ctx) error {
	var req struct {
		Page int `json:"page"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.session.SetPage(req.Page); err != nil {
		return respondError(c, err, "Invalid page")
	}
	return c.JSON(h.session.State())
}

// HandleSetMode switches between list and card view.
func (h *ViewHandler) HandleSetMode(c *fiber.Ctx) error {
	var req struct {
		Mode models.ViewMode `json:"mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.session.SetViewMode(req.Mode); err != nil {
		return respondError(c, err, "Invalid view mode")
	}
	return c.JSON(h.session.State())
}
