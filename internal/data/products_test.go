package data_test

import (
	"testing"

	"inventory/internal/data"
	"inventory/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_ValidAndUnique(t *testing.T) {
	products := data.Products()
	require.NotEmpty(t, products)
	assert.Greater(t, len(products), 12, "seed spans more than one page")

	v := validation.New()
	seen := map[int]bool{}
	for _, p := range products {
		assert.NoError(t, v.Struct(p), "product %d", p.ID)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.CreatedAt)
	}
}

func TestProducts_ReturnsCopies(t *testing.T) {
	first := data.Products()
	first[0].Name = "changed"
	first[0].Tags[0] = "changed"

	second := data.Products()
	assert.NotEqual(t, "changed", second[0].Name)
	assert.NotEqual(t, "changed", second[0].Tags[0])
}
