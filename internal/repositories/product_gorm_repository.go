package repositories

import (
	"errors"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// productRecord is the table row behind GORMProductRepository. Seq encodes
// store order: higher Seq comes first.
type productRecord struct {
	ID          int      `gorm:"primaryKey;autoIncrement:false"`
	Seq         int64    `gorm:"index;not null"`
	Name        string   `gorm:"type:varchar(255);not null"`
	Price       float64  `gorm:"not null"`
	Category    string   `gorm:"type:varchar(100);not null"`
	Stock       int      `gorm:"not null"`
	Description string   `gorm:"type:text"`
	IsActive    bool     `gorm:"not null"`
	Tags        []string `gorm:"serializer:json"`
	CreatedAt   string   `gorm:"column:created_at;type:varchar(40);autoCreateTime:false"`
}

func (productRecord) TableName() string { return "products" }

func newProductRecord(p *models.Product, seq int64) productRecord {
	c := p.Clone()
	return productRecord{
		ID:          c.ID,
		Seq:         seq,
		Name:        c.Name,
		Price:       c.Price,
		Category:    c.Category,
		Stock:       c.Stock,
		Description: c.Description,
		IsActive:    c.IsActive,
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt,
	}
}

func (r productRecord) toModel() models.Product {
	return models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		Description: r.Description,
		IsActive:    r.IsActive,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
	}.Clone()
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository
// and migrates its table.
func NewGORMProductRepository(db *gorm.DB) (*GORMProductRepository, error) {
	if err := db.AutoMigrate(&productRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate products table: %w", err)
	}
	return &GORMProductRepository{
		db: db,
	}, nil
}

// GetAll retrieves all products in store order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var records []productRecord
	if err := r.db.Order("seq DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := make([]models.Product, len(records))
	for i, rec := range records {
		products[i] = rec.toModel()
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id int) (*models.Product, error) {
	var record productRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	product := record.toModel()
	return &product, nil
}

// MaxID returns the largest product ID, or 0 for an empty table.
func (r *GORMProductRepository) MaxID() (int, error) {
	var maxID int
	if err := r.db.Model(&productRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("failed to get max product ID: %w", err)
	}
	return maxID, nil
}

// Create inserts a product ahead of every existing one.
func (r *GORMProductRepository) Create(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxSeq int64
		if err := tx.Model(&productRecord{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("failed to read product order: %w", err)
		}
		record := newProductRecord(product, maxSeq+1)
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	})
}

// Update overwrites an existing product, keeping its position.
func (r *GORMProductRepository) Update(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing productRecord
		if err := tx.First(&existing, "id = ?", product.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %d not updated: %w", product.ID, ErrProductNotFound)
			}
			return fmt.Errorf("failed to load product %d for update: %w", product.ID, err)
		}
		record := newProductRecord(product, existing.Seq)
		if err := tx.Save(&record).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id int) error {
	res := r.db.Delete(&productRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not deleted: %w", id, ErrProductNotFound)
	}
	return nil
}

// Replace truncates the table and loads products in the given order.
func (r *GORMProductRepository) Replace(products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&productRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		if len(products) == 0 {
			return nil
		}
		records := make([]productRecord, len(products))
		for i := range products {
			records[i] = newProductRecord(&products[i], int64(len(products)-i))
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
}
