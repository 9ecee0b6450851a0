package views_test

import (
	"fmt"
	"testing"

	"inventory/internal/models"
	"inventory/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: n - i, Name: fmt.Sprintf("Item %02d", n-i), Price: 1, Category: "Misc"}
	}
	return products
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	products := []models.Product{
		{ID: 5, Name: "Ballpoint PEN"},
		{ID: 4, Name: "Notebook"},
		{ID: 3, Name: "Pencil Case"},
		{ID: 2, Name: "Open Shelf"},
		{ID: 1, Name: "Stapler"},
	}

	assert.Equal(t, []string{"Ballpoint PEN", "Pencil Case", "Open Shelf"}, names(views.Filter(products, "pen")))
	assert.Equal(t, []string{"Ballpoint PEN", "Pencil Case", "Open Shelf"}, names(views.Filter(products, "PEN")))
	assert.Empty(t, views.Filter(products, "chair"))
}

func TestFilter_EmptyQueryReturnsCollectionUnchanged(t *testing.T) {
	products := catalog(5)
	assert.Equal(t, products, views.Filter(products, ""))
}

func TestFilter_UnicodeNames(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "ÉCRAN Plat"}, {ID: 2, Name: "Straße Schild"}}
	assert.Equal(t, []string{"ÉCRAN Plat"}, names(views.Filter(products, "écran")))
	assert.Equal(t, []string{"Straße Schild"}, names(views.Filter(products, "STRAßE")))
}

func TestPaginate_TwentyFiveItems(t *testing.T) {
	products := catalog(25)

	first := views.Paginate(products, 1, views.PageSize)
	assert.Equal(t, 3, first.TotalPages)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, products[0:12], first.Items)
	assert.Equal(t, 1, first.ShowingFrom)
	assert.Equal(t, 12, first.ShowingTo)

	second := views.Paginate(products, 2, views.PageSize)
	assert.Equal(t, products[12:24], second.Items)

	third := views.Paginate(products, 3, views.PageSize)
	require.Len(t, third.Items, 1)
	assert.Equal(t, products[24], third.Items[0])
	assert.Equal(t, 25, third.ShowingFrom)
	assert.Equal(t, 25, third.ShowingTo)
	assert.Equal(t, 25, third.FilteredCount)
}

func TestPaginate_PageBeyondTotalIsEmptyAndNotClamped(t *testing.T) {
	page := views.Paginate(catalog(13), 5, views.PageSize)
	assert.True(t, page.Empty())
	assert.Equal(t, 5, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	page := views.Paginate(nil, 1, views.PageSize)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.DisplayPages())
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.ShowingFrom)
	assert.Equal(t, 0, page.ShowingTo)
}

func TestPaginate_InvalidPage(t *testing.T) {
	page := views.Paginate(catalog(5), 0, views.PageSize)
	assert.True(t, page.Empty())
}

func TestDerive_FilterThenPaginate(t *testing.T) {
	products := catalog(30)
	// "Item 1" matches Item 10..19 plus nothing else.
	page := views.Derive(products, "item 1", 1)
	assert.Equal(t, 10, page.FilteredCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, "Item 19", page.Items[0].Name)
	assert.Equal(t, "Item 10", page.Items[9].Name)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, views.TotalPages(0, 12))
	assert.Equal(t, 1, views.TotalPages(12, 12))
	assert.Equal(t, 2, views.TotalPages(13, 12))
	assert.Equal(t, 0, views.TotalPages(5, 0))
}
