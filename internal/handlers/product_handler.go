package handlers

import (
	"fmt"

	"inventory/internal/forms"
	"inventory/internal/models"
	"inventory/internal/services"
	"inventory/internal/session"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	session  *session.Session
	products *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(s *session.Session, products *services.ProductService) *ProductHandler {
	return &ProductHandler{
		session:  s,
		products: products,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetPage)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetPage returns the visible page window for the current search and page.
func (h *ProductHandler) HandleGetPage(c *fiber.Ctx) error {
	page, err := h.session.View()
	if err != nil {
		return respondError(c, err, "Could not retrieve products")
	}
	return c.JSON(fiber.Map{
		"items":          page.Items,
		"current_page":   page.CurrentPage,
		"total_pages":    page.TotalPages,
		"display_pages":  page.DisplayPages(),
		"page_size":      page.PageSize,
		"filtered_count": page.FilteredCount,
		"showing_from":   page.ShowingFrom,
		"showing_to":     page.ShowingTo,
		"view_mode":      h.session.State().ViewMode,
	})
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product ID must be an integer", err)
	}
	product, err := h.products.Get(id)
	if err != nil {
		return respondError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct validates the submitted form fields and adds a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	fields := forms.NewCreate().Fields()
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	product, err := h.session.Save(nil, fields)
	if err != nil {
		return respondError(c, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct validates the submitted form fields and replaces a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product ID must be an integer", err)
	}
	var fields forms.Fields
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	product, err := h.session.Save(&id, fields)
	if err != nil {
		return respondError(c, err, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product once the request confirms it.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Product ID must be an integer", err)
	}

	confirmed := c.QueryBool("confirm", false)
	_, err = h.session.Delete(id, func(models.Product) bool { return confirmed })
	if err != nil {
		return respondError(c, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message":      fmt.Sprintf("Product %d deleted successfully", id),
		"current_page": h.session.State().CurrentPage,
	})
}
