package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, newest first.
	GetAll() ([]models.Product, error)
	// GetByID returns the product with the given id or ErrNotFound.
	GetByID(id uint) (*models.Product, error)
	// Create inserts the product; the store assigns ID and CreatedAt.
	Create(product *models.Product) error
	// Update writes only the fields present in the update and returns the
	// resulting record. Fails with ErrNoFieldsToUpdate when the update is
	// empty and ErrNotFound when no row matches.
	Update(id uint, update models.ProductUpdate) (*models.Product, error)
	// Delete removes the row and returns the deleted record, or ErrNotFound.
	Delete(id uint) (*models.Product, error)
}
