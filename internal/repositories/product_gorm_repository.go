package repositories

import (
	"errors"
	"fmt"

	"vendo/internal/apperrors"
	"vendo/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	return r.getByID(r.db, id)
}

// GetByIDForUpdate retrieves a product by ID with a row-level write lock.
// The locking clause is postgres-only; SQLite serializes writers natively.
func (r *GORMProductRepository) GetByIDForUpdate(id string) (*models.Product, error) {
	db := r.db
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.getByID(db, id)
}

func (r *GORMProductRepository) getByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s for update: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete purges a product row by ID. Unscoped keeps GORM from
// soft-deleting so the ID does not linger in the table.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Unscoped().Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteBySeller removes all products owned by the given seller. Deleting
// zero rows is not an error: a seller may own nothing.
func (r *GORMProductRepository) DeleteBySeller(sellerID string) error {
	if err := r.db.Unscoped().Delete(&models.Product{}, "seller_id = ?", sellerID).Error; err != nil {
		return fmt.Errorf("failed to delete products of seller %s: %w", sellerID, err)
	}
	return nil
}
