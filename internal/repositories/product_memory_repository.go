package repositories

import (
	"fmt"
	"sync"

	"inventory/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Every mutation swaps in a freshly built slice; a snapshot handed out by
// GetAll is never modified afterwards.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: []models.Product{},
	}
}

// GetAll returns all products in store order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, len(r.products))
	for i, p := range r.products {
		productList[i] = p.Clone()
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	product := r.products[i].Clone()
	return &product, nil
}

// MaxID returns the largest ID in the collection, or 0 when it is empty.
func (r *MemoryProductRepository) MaxID() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID, nil
}

// Create prepends a new product.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("product with ID %d already exists", product.ID)
	}
	next := make([]models.Product, 0, len(r.products)+1)
	next = append(next, product.Clone())
	next = append(next, r.products...)
	r.products = next
	return nil
}

// Update replaces an existing product in place.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return fmt.Errorf("product with ID %d not updated: %w", product.ID, ErrProductNotFound)
	}
	next := make([]models.Product, len(r.products))
	copy(next, r.products)
	next[i] = product.Clone()
	r.products = next
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("product with ID %d not deleted: %w", id, ErrProductNotFound)
	}
	next := make([]models.Product, 0, len(r.products)-1)
	next = append(next, r.products[:i]...)
	next = append(next, r.products[i+1:]...)
	r.products = next
	return nil
}

// Replace swaps the whole collection for products, keeping their order.
func (r *MemoryProductRepository) Replace(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))
	next := make([]models.Product, len(products))
	for i, p := range products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product ID %d in snapshot", p.ID)
		}
		seen[p.ID] = struct{}{}
		next[i] = p.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = next
	return nil
}

func (r *MemoryProductRepository) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
