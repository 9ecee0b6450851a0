package repositories_test

import (
	"fmt"
	"testing"

	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// repoFactories builds a fresh repository per backend so the same behaviour is
// checked against both implementations.
var repoFactories = map[string]func(t *testing.T) repositories.ProductRepository{
	"memory": func(t *testing.T) repositories.ProductRepository {
		return repositories.NewMemoryProductRepository()
	},
	"gorm": func(t *testing.T) repositories.ProductRepository {
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		require.NoError(t, err)
		repo, err := repositories.NewGORMProductRepository(db)
		require.NoError(t, err)
		return repo
	},
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 3, Name: "Desk Lamp", Price: 899, Category: "Furniture", Stock: 12, IsActive: true, Tags: []string{"lighting"}, CreatedAt: "2024-01-03T10:00:00.000Z"},
		{ID: 1, Name: "Laptop", Price: 74999, Category: "Electronics", Stock: 10, IsActive: true, Tags: []string{}, CreatedAt: "2024-01-01T10:00:00.000Z"},
		{ID: 2, Name: "Keyboard", Price: 2499, Category: "Electronics", Stock: 0, IsActive: false, Tags: []string{"mechanical", "rgb"}, CreatedAt: "2024-01-02T10:00:00.000Z"},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductRepository_ReplaceKeepsOrder(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.Replace(seedProducts()))

			products, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []int{3, 1, 2}, ids(products))
			assert.Equal(t, []string{"mechanical", "rgb"}, products[2].Tags)

			maxID, err := repo.MaxID()
			require.NoError(t, err)
			assert.Equal(t, 3, maxID)
		})
	}
}

func TestProductRepository_CreatePrepends(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.Replace(seedProducts()))

			pen := &models.Product{ID: 4, Name: "Pen", Price: 10, Category: "Office", Stock: 5, IsActive: true, CreatedAt: "2024-02-01T00:00:00.000Z"}
			require.NoError(t, repo.Create(pen))

			products, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []int{4, 3, 1, 2}, ids(products))
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.Replace(seedProducts()))

			product, err := repo.GetByID(2)
			require.NoError(t, err)
			assert.Equal(t, "Keyboard", product.Name)

			product, err = repo.GetByID(99)
			assert.ErrorIs(t, err, repositories.ErrProductNotFound)
			assert.Nil(t, product)
		})
	}
}

func TestProductRepository_UpdateKeepsPosition(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.Replace(seedProducts()))

			updated := seedProducts()[1]
			updated.Name = "Laptop Pro"
			updated.Tags = []string{"refurbished"}
			require.NoError(t, repo.Update(&updated))

			products, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []int{3, 1, 2}, ids(products))
			assert.Equal(t, "Laptop Pro", products[1].Name)
			assert.Equal(t, []string{"refurbished"}, products[1].Tags)

			missing := models.Product{ID: 42, Name: "Ghost", Price: 1, Category: "None"}
			assert.ErrorIs(t, repo.Update(&missing), repositories.ErrProductNotFound)
		})
	}
}

func TestProductRepository_Delete(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			require.NoError(t, repo.Replace(seedProducts()))

			require.NoError(t, repo.Delete(1))
			products, err := repo.GetAll()
			require.NoError(t, err)
			assert.Equal(t, []int{3, 2}, ids(products))

			assert.ErrorIs(t, repo.Delete(1), repositories.ErrProductNotFound)
		})
	}
}

func TestProductRepository_MaxIDOnEmpty(t *testing.T) {
	for name, newRepo := range repoFactories {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			maxID, err := repo.MaxID()
			require.NoError(t, err)
			assert.Equal(t, 0, maxID)
		})
	}
}

func TestMemoryProductRepository_SnapshotsAreIsolated(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Replace(seedProducts()))

	before, err := repo.GetAll()
	require.NoError(t, err)
	before[0].Name = "mutated"
	before[2].Tags[0] = "mutated"

	require.NoError(t, repo.Delete(3))

	after, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(after))
	assert.Equal(t, "mechanical", after[1].Tags[0])
	assert.Len(t, before, 3, "earlier snapshot must not change")
}

func TestMemoryProductRepository_RejectsDuplicateIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	dup := seedProducts()
	dup[1].ID = 3
	assert.Error(t, repo.Replace(dup))

	require.NoError(t, repo.Replace(seedProducts()))
	assert.Error(t, repo.Create(&models.Product{ID: 2, Name: "Dup"}))
}
