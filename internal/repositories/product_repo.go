package repositories

import (
	"shopfront/internal/models"
)

// ProductRepository defines the interface for catalog data access.
// The catalog is read-only from the application's perspective; Create exists
// for startup seeding and administrative tooling only.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
