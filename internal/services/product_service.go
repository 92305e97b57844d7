package services

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogPublisher publishes catalog change events. Implemented by
// pkg/rabbitmq; a nil publisher disables eventing.
type CatalogPublisher interface {
	PublishProductEvent(action string, product *models.Product) error
}

// Actions carried on catalog events.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher CatalogPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case catalog events are skipped.
func NewProductService(repo repositories.ProductRepository, publisher CatalogPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. Verified defaults to true only when
// the field is absent; an explicit false is stored as sent.
func (s *ProductService) CreateProduct(input models.NewProduct) (*models.Product, error) {
	product := &models.Product{
		Title:            input.Title,
		Category:         input.Category,
		Quantity:         input.Quantity,
		PricePerQuantity: input.PricePerQuantity,
		Description:      input.Description,
		Verified:         true,
	}
	if input.Verified != nil {
		product.Verified = *input.Verified
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publishEvent(ProductCreated, product)
	return product, nil
}

// UpdateProduct applies a partial update and returns the updated record.
func (s *ProductService) UpdateProduct(id uint, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.Update(id, update)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID and returns the removed record.
func (s *ProductService) DeleteProduct(id uint) (*models.Product, error) {
	product, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ProductDeleted, product)
	return product, nil
}

// publishEvent fires a catalog event. Publishing is best-effort: a broker
// failure is logged and never fails the request.
func (s *ProductService) publishEvent(action string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(action, product); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
