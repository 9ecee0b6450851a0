// Package views derives the visible page window from the product collection.
// Everything here is pure: the same inputs always give the same Page.
package views

import (
	"math"
	"strings"

	"inventory/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of products per page.
const PageSize = 12

// Page is the derived view for one (collection, query, page) triple.
type Page struct {
	Items         []models.Product `json:"items"`
	CurrentPage   int              `json:"current_page"`
	TotalPages    int              `json:"total_pages"`
	PageSize      int              `json:"page_size"`
	FilteredCount int              `json:"filtered_count"`
	StartIndex    int              `json:"start_index"`
	ShowingFrom   int              `json:"showing_from"`
	ShowingTo     int              `json:"showing_to"`
}

// DisplayPages is TotalPages with an empty result counted as one page.
func (p Page) DisplayPages() int {
	if p.TotalPages == 0 {
		return 1
	}
	return p.TotalPages
}

// Empty reports whether the window holds no products.
func (p Page) Empty() bool {
	return len(p.Items) == 0
}

// Filter keeps products whose name contains query, ignoring case. An empty
// query keeps everything. Order is preserved.
func Filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	// A Caser is stateful and must not be shared.
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(lower.String(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// TotalPages returns ceil(count / size).
func TotalPages(count, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(size)))
}

// Paginate slices the window for page (1-based). A page past the end yields an
// empty window; the page number is never clamped.
func Paginate(filtered []models.Product, page, size int) Page {
	start := (page - 1) * size
	result := Page{
		Items:         []models.Product{},
		CurrentPage:   page,
		TotalPages:    TotalPages(len(filtered), size),
		PageSize:      size,
		FilteredCount: len(filtered),
		StartIndex:    start,
		ShowingFrom:   start + 1,
		ShowingTo:     min(start+size, len(filtered)),
	}
	if page < 1 || size <= 0 || start >= len(filtered) {
		return result
	}
	end := min(start+size, len(filtered))
	result.Items = filtered[start:end]
	return result
}

// Derive runs filter then paginate with the fixed page size.
func Derive(products []models.Product, query string, page int) Page {
	return Paginate(Filter(products, query), page, PageSize)
}
