package repositories

import (
	"errors"

	"inventory/internal/models"
)

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Implementations keep the collection in store order, newest first.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	MaxID() (int, error)
	Create(product *models.Product) error // prepends
	Update(product *models.Product) error
	Delete(id int) error
	Replace(products []models.Product) error // loads a snapshot in the given order
}
