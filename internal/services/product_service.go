package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ErrInvalidProduct is returned when a draft breaks a product invariant.
var ErrInvalidProduct = errors.New("invalid product")

// CreatedAtLayout is the timestamp format stored in Product.CreatedAt.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// EventPublisher receives a notification after every successful mutation.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService owns the product collection and its mutation rules.
type ProductService struct {
	repo     repositories.ProductRepository
	events   EventPublisher
	clock    clock.Clock
	validate *validator.Validate
	log      *logrus.Entry
	mu       sync.Mutex // serializes ID assignment with insertion
}

// Option configures a ProductService.
type Option func(*ProductService)

// WithEventPublisher publishes change events through p.
func WithEventPublisher(p EventPublisher) Option {
	return func(s *ProductService) {
		s.events = p
	}
}

// WithClock sets the clock used for CreatedAt stamps.
func WithClock(c clock.Clock) Option {
	return func(s *ProductService) {
		s.clock = c
	}
}

// WithLogger sets the logger entry.
func WithLogger(l *logrus.Entry) Option {
	return func(s *ProductService) {
		s.log = l
	}
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, opts ...Option) *ProductService {
	s := &ProductService{
		repo:     repo,
		clock:    clock.New(),
		validate: validation.New(),
		log:      logrus.WithField("component", "products"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed replaces the collection with products, in display order.
func (s *ProductService) Seed(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if err := s.validate.Struct(p); err != nil {
			return fmt.Errorf("seed product %d: %w: %v", p.ID, ErrInvalidProduct, err)
		}
	}
	if err := s.repo.Replace(products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	s.log.WithField("count", len(products)).Info("product collection seeded")
	return nil
}

// List returns the whole collection, newest first.
func (s *ProductService) List() ([]models.Product, error) {
	return s.repo.GetAll()
}

// Get retrieves a single product by its ID.
func (s *ProductService) Get(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Add stores a new product ahead of all others. Its ID is one more than the
// current maximum (1 for an empty collection) and CreatedAt is now.
func (s *ProductService) Add(draft models.ProductDraft) (*models.Product, error) {
	if err := s.check(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	maxID, err := s.repo.MaxID()
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to assign product ID: %w", err)
	}
	product := models.Product{
		ID:        maxID + 1,
		CreatedAt: s.clock.Now().UTC().Format(CreatedAtLayout),
	}.Apply(draft)
	err = s.repo.Create(&product)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": product.ID, "name": product.Name}).Info("product added")
	s.publish(models.EventProductCreated, product.ID, &product)
	return &product, nil
}

// Update replaces every field of product id with the draft, keeping its ID and
// CreatedAt. The collection is unchanged when id is absent.
func (s *ProductService) Update(id int, draft models.ProductDraft) (*models.Product, error) {
	if err := s.check(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	product := existing.Apply(draft)
	err = s.repo.Update(&product)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.log.WithField("product_id", id).Info("product updated")
	s.publish(models.EventProductUpdated, id, &product)
	return &product, nil
}

// Remove deletes product id and reports whether a record was removed.
func (s *ProductService) Remove(id int) (bool, error) {
	s.mu.Lock()
	err := s.repo.Delete(id)
	s.mu.Unlock()
	if errors.Is(err, repositories.ErrProductNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.WithField("product_id", id).Info("product removed")
	s.publish(models.EventProductDeleted, id, nil)
	return true, nil
}

func (s *ProductService) check(draft models.ProductDraft) error {
	if err := s.validate.Struct(draft); err != nil {
		fields := validation.Messages(err, nil)
		return fmt.Errorf("%w: %v", ErrInvalidProduct, fields)
	}
	return nil
}

func (s *ProductService) publish(eventType string, id int, product *models.Product) {
	if s.events == nil {
		return
	}
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Product:    product,
		OccurredAt: s.clock.Now().UTC().Truncate(time.Millisecond),
	}
	// The mutation has already happened; a broker failure only costs the event.
	if err := s.events.PublishProductEvent(event); err != nil {
		s.log.WithError(err).WithField("event", eventType).Warn("failed to publish product event")
	}
}
