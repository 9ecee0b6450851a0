// Package forms holds the product edit buffer used by the add/edit form.
package forms

import (
	"math"
	"strconv"
	"strings"

	"inventory/internal/models"
	"inventory/internal/validation"

	"github.com/go-playground/validator/v10"
)

// Mode tells whether a draft creates a product or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Validation messages, keyed by field.
const (
	MsgNameRequired     = "Product name is required"
	MsgPriceInvalid     = "Price must be a valid number greater than 0"
	MsgCategoryRequired = "Category is required"
	MsgStockInvalid     = "Stock must be a valid number (0 or greater)"
)

var fieldMessages = map[string]string{
	"name":     MsgNameRequired,
	"price":    MsgPriceInvalid,
	"category": MsgCategoryRequired,
	"stock":    MsgStockInvalid,
}

// FieldErrors maps a form field to its validation message.
type FieldErrors = validation.FieldErrors

// Fields is the raw, unvalidated form content. Numeric fields are kept as the
// text the user typed.
type Fields struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Stock       string   `json:"stock"`
	Description string   `json:"description"`
	IsActive    bool     `json:"isActive"`
	Tags        []string `json:"tags"`
}

// Patch is a partial field edit; nil members are left unchanged.
type Patch struct {
	Name        *string   `json:"name"`
	Price       *string   `json:"price"`
	Category    *string   `json:"category"`
	Stock       *string   `json:"stock"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"isActive"`
	Tags        *[]string `json:"tags"`
}

// MaxStock is the largest stock count the form accepts.
const MaxStock = math.MaxInt32

// submission is what validation runs against. Unparseable numbers stay nil so
// they fail the required tag.
type submission struct {
	Name     string   `json:"name" validate:"notblank"`
	Price    *float64 `json:"price" validate:"required,gt=0"`
	Category string   `json:"category" validate:"notblank"`
	Stock    *float64 `json:"stock" validate:"required,gte=0,lte=2147483647,whole"`
}

// Draft is the transient edit buffer behind the product form.
type Draft struct {
	mode     Mode
	targetID int
	fields   Fields
	errors   FieldErrors
	validate *validator.Validate
}

// NewCreate returns a draft seeded with the empty template.
func NewCreate() *Draft {
	return &Draft{
		mode: ModeCreate,
		fields: Fields{
			IsActive: true,
			Tags:     []string{},
		},
		validate: validation.New(),
	}
}

// NewEdit returns a draft seeded from an existing product.
func NewEdit(p models.Product) *Draft {
	c := p.Clone()
	return &Draft{
		mode:     ModeEdit,
		targetID: p.ID,
		fields: Fields{
			Name:        c.Name,
			Price:       strconv.FormatFloat(c.Price, 'f', -1, 64),
			Category:    c.Category,
			Stock:       strconv.Itoa(c.Stock),
			Description: c.Description,
			IsActive:    c.IsActive,
			Tags:        c.Tags,
		},
		validate: validation.New(),
	}
}

// Mode returns the draft's mode.
func (d *Draft) Mode() Mode { return d.mode }

// TargetID is the product being edited; zero in create mode.
func (d *Draft) TargetID() int { return d.targetID }

// Fields returns a copy of the current content.
func (d *Draft) Fields() Fields {
	f := d.fields
	f.Tags = append([]string{}, d.fields.Tags...)
	return f
}

// Errors returns the messages from the last submit attempt.
func (d *Draft) Errors() FieldErrors {
	out := make(FieldErrors, len(d.errors))
	for k, v := range d.errors {
		out[k] = v
	}
	return out
}

// Set replaces the whole content. It does not validate.
func (d *Draft) Set(f Fields) {
	if f.Tags == nil {
		f.Tags = []string{}
	}
	f.Tags = append([]string{}, f.Tags...)
	d.fields = f
}

// Apply merges a partial edit. It does not validate.
func (d *Draft) Apply(p Patch) {
	if p.Name != nil {
		d.fields.Name = *p.Name
	}
	if p.Price != nil {
		d.fields.Price = *p.Price
	}
	if p.Category != nil {
		d.fields.Category = *p.Category
	}
	if p.Stock != nil {
		d.fields.Stock = *p.Stock
	}
	if p.Description != nil {
		d.fields.Description = *p.Description
	}
	if p.IsActive != nil {
		d.fields.IsActive = *p.IsActive
	}
	if p.Tags != nil {
		d.fields.Tags = append([]string{}, (*p.Tags)...)
	}
}

// Validate checks every rule and returns all failures. An empty result means
// the draft can be submitted.
func (d *Draft) Validate() FieldErrors {
	err := d.validate.Struct(submission{
		Name:     d.fields.Name,
		Price:    parseNumber(d.fields.Price),
		Category: d.fields.Category,
		Stock:    parseNumber(d.fields.Stock),
	})
	if fields := validation.Messages(err, fieldMessages); fields != nil {
		return fields
	}
	return FieldErrors{}
}

// Submit validates the draft. On failure the errors are kept on the draft and
// returned; on success the normalized draft is returned and errors are cleared.
func (d *Draft) Submit() (models.ProductDraft, FieldErrors) {
	errs := d.Validate()
	d.errors = errs
	if len(errs) > 0 {
		return models.ProductDraft{}, d.Errors()
	}
	price := parseNumber(d.fields.Price)
	stock := parseNumber(d.fields.Stock)
	return models.ProductDraft{
		Name:        strings.TrimSpace(d.fields.Name),
		Price:       *price,
		Category:    strings.TrimSpace(d.fields.Category),
		Stock:       int(*stock),
		Description: strings.TrimSpace(d.fields.Description),
		IsActive:    d.fields.IsActive,
		Tags:        append([]string{}, d.fields.Tags...),
	}, nil
}

// parseNumber reads a decimal number, ignoring surrounding whitespace. Empty,
// malformed and non-finite input yield nil.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
