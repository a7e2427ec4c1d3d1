package repositories

import "vendo/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// GetByIDForUpdate loads a product with a row-level write lock when the
	// backing store supports one. Only meaningful inside a transaction.
	GetByIDForUpdate(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DeleteBySeller removes every product owned by the given seller.
	// Used when a seller account is removed.
	DeleteBySeller(sellerID string) error
}
