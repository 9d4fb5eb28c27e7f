package services_test

import (
	"testing"

	"shopfront/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCatalogService_GetAllProducts(t *testing.T) {
	catalog, _ := seededCatalog(t)

	products, err := catalog.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestCatalogService_GetProductByID(t *testing.T) {
	catalog, _ := seededCatalog(t)

	product, err := catalog.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", product.Title)
}

func TestCatalogService_GetProductByIDNotFound(t *testing.T) {
	catalog, _ := seededCatalog(t)

	product, err := catalog.GetProductByID("ghost")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}
