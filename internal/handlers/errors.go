package handlers

import (
	"errors"

	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps a domain error to a status code and JSON body.
func respondError(c *fiber.Ctx, err error, message string) error {
	var invalid *session.ValidationError
	switch {
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  invalid.Fields,
		})
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidProduct):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, session.ErrFormClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "No product form is open",
			"error":   err.Error(),
		})
	case errors.Is(err, session.ErrNotConfirmed):
		return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{
			"message": "Deletion must be confirmed with confirm=true",
			"error":   err.Error(),
		})
	case errors.Is(err, session.ErrInvalidPage), errors.Is(err, session.ErrInvalidViewMode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}

	logrus.WithError(err).WithField("path", c.Path()).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
