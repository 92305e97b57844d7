package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id uint, update models.ProductUpdate) (*models.Product, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockCatalogPublisher is a mock implementation of services.CatalogPublisher
type MockCatalogPublisher struct {
	mock.Mock
}

func (m *MockCatalogPublisher) PublishProductEvent(action string, product *models.Product) error {
	args := m.Called(action, product)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Title: "Product A", PricePerQuantity: 10.0, Quantity: 100},
		{ID: 2, Title: "Product B", PricePerQuantity: 20.0, Quantity: 50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Title: "Product A", PricePerQuantity: 10.0, Quantity: 100}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DefaultsVerifiedWhenOmitted(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockCatalogPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	input := models.NewProduct{
		Title:            "New Product",
		Category:         "Social Media",
		Quantity:         20,
		PricePerQuantity: 50.0,
		Description:      "A new product",
	}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Verified && p.Title == "New Product"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", services.ProductCreated, mock.Anything).Return(nil).Once()

	product, err := service.CreateProduct(input)

	assert.NoError(t, err)
	assert.True(t, product.Verified)
	assert.EqualValues(t, 7, product.ID)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_KeepsExplicitVerifiedFalse(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	verified := false
	input := models.NewProduct{
		Title:            "Unverified Product",
		Category:         "Privacy",
		Quantity:         1,
		PricePerQuantity: 2500,
		Description:      "Not vetted yet",
		Verified:         &verified,
	}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return !p.Verified
	})).Return(nil).Once()

	product, err := service.CreateProduct(input)

	assert.NoError(t, err)
	assert.False(t, product.Verified)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureDoesNotFailCreate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockCatalogPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	input := models.NewProduct{
		Title:            "New Product",
		Category:         "Social Media",
		Quantity:         20,
		PricePerQuantity: 50.0,
		Description:      "A new product",
	}

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", services.ProductCreated, mock.Anything).
		Return(fmt.Errorf("broker unreachable")).Once()

	product, err := service.CreateProduct(input)

	assert.NoError(t, err)
	assert.NotNil(t, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockCatalogPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	quantity := 5
	update := models.ProductUpdate{Quantity: &quantity}
	updatedProduct := &models.Product{ID: 1, Title: "Product A", Quantity: 5}

	// Test successful update
	mockRepo.On("Update", uint(1), update).Return(updatedProduct, nil).Once()
	mockPublisher.On("PublishProductEvent", services.ProductUpdated, updatedProduct).Return(nil).Once()
	product, err := service.UpdateProduct(1, update)
	assert.NoError(t, err)
	assert.Equal(t, updatedProduct, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test update failure: no event published
	mockRepo.On("Update", uint(99), update).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.UpdateProduct(99, update)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockCatalogPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	deletedProduct := &models.Product{ID: 1, Title: "Product A"}

	// Test successful deletion
	mockRepo.On("Delete", uint(1)).Return(deletedProduct, nil).Once()
	mockPublisher.On("PublishProductEvent", services.ProductDeleted, deletedProduct).Return(nil).Once()
	product, err := service.DeleteProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, deletedProduct, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test deletion failure: no event published
	mockRepo.On("Delete", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.DeleteProduct(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
