package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products, newest first.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		if !productList[i].CreatedAt.Equal(productList[j].CreatedAt) {
			return productList[i].CreatedAt.After(productList[j].CreatedAt)
		}
		return productList[i].ID > productList[j].ID
	})
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product, assigning its ID and CreatedAt.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update applies the non-nil fields of the update to the stored product.
func (r *MockProductRepository) Update(id uint, update models.ProductUpdate) (*models.Product, error) {
	if len(update.Changes()) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if update.Title != nil {
		product.Title = *update.Title
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Quantity != nil {
		product.Quantity = *update.Quantity
	}
	if update.PricePerQuantity != nil {
		product.PricePerQuantity = *update.PricePerQuantity
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Verified != nil {
		product.Verified = *update.Verified
	}
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID and returns the removed record.
func (r *MockProductRepository) Delete(id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return &product, nil
}
