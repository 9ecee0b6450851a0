package models

// Product represents an inventory item held in the collection.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name" validate:"notblank"`
	Price       float64  `json:"price" validate:"gt=0"`
	Category    string   `json:"category" validate:"notblank"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Description string   `json:"description"`
	IsActive    bool     `json:"isActive"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"` // RFC 3339, set once by the store
}

// ProductDraft is a normalized product without store-assigned fields.
type ProductDraft struct {
	Name        string   `json:"name" validate:"notblank"`
	Price       float64  `json:"price" validate:"gt=0"`
	Category    string   `json:"category" validate:"notblank"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Description string   `json:"description"`
	IsActive    bool     `json:"isActive"`
	Tags        []string `json:"tags"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Tags = cloneTags(p.Tags)
	return p
}

// Draft strips the store-assigned fields.
func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Description: p.Description,
		IsActive:    p.IsActive,
		Tags:        cloneTags(p.Tags),
	}
}

// Apply overwrites every mutable field of p with the draft's values.
// ID and CreatedAt are left untouched.
func (p Product) Apply(d ProductDraft) Product {
	p.Name = d.Name
	p.Price = d.Price
	p.Category = d.Category
	p.Stock = d.Stock
	p.Description = d.Description
	p.IsActive = d.IsActive
	p.Tags = cloneTags(d.Tags)
	return p
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
