package services

import (
	"errors"
	"fmt"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
)

// CatalogService handles read access to the product catalog. It is the single
// source of truth for product data: the cart and order services resolve every
// product through it, there is no secondary fixed product table.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to look up product %s: %w", id, err)
	}
	return product, nil
}
