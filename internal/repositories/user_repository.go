package repositories

import "vendo/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// GetByIDForUpdate loads a user with a row-level write lock when the
	// backing store supports one. Only meaningful inside a transaction.
	GetByIDForUpdate(id string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
