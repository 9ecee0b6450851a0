package models

import "time"

// Product change event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductEvent describes a single mutation of the product collection.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  int       `json:"product_id"`
	Product    *Product  `json:"product,omitempty"` // nil for deletions
	OccurredAt time.Time `json:"occurred_at"`
}
