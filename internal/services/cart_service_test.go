package services_test

import (
	"testing"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// seededCatalog returns a catalog with the two products used throughout the
// cart and order tests: p1 at 100.00 and p2 at 50.00.
func seededCatalog(t *testing.T) (*services.CatalogService, *repositories.MockProductRepository) {
	t.Helper()
	repo := repositories.NewMockProductRepository()
	products := []models.Product{
		{ID: "p1", Title: "Laptop", Price: models.NewMoney(decimal.RequireFromString("100.00")), ImageURL: "https://example.com/p1.jpg"},
		{ID: "p2", Title: "Mouse", Price: models.NewMoney(decimal.RequireFromString("50.00")), ImageURL: "https://example.com/p2.jpg"},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}
	return services.NewCatalogService(repo), repo
}

func newCartService(t *testing.T, shippingFee string) *services.CartService {
	t.Helper()
	catalog, _ := seededCatalog(t)
	fee, err := models.NewMoneyFromString(shippingFee)
	assert.NoError(t, err)
	return services.NewCartService(catalog, fee, nil)
}

func TestCartService_AddAccumulatesQuantity(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart := models.NewCart()
	var changed bool
	for i := 0; i < 3; i++ {
		cart, changed = svc.Add(cart, "p1")
		assert.True(t, changed)
	}

	entry := cart["p1"]
	assert.Equal(t, 3, entry.Quantity)
	assert.Equal(t, "Laptop", entry.Title)
	assert.Equal(t, "100.00", entry.Price.String())
	assert.False(t, entry.Legacy)
	assert.Len(t, cart, 1)
}

func TestCartService_AddUnknownProductIsNoOp(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart, changed := svc.Add(models.NewCart(), "ghost")
	assert.False(t, changed)
	assert.Empty(t, cart)
}

func TestCartService_AddHandlesNilCart(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart, changed := svc.Add(nil, "p1")
	assert.True(t, changed)
	assert.Equal(t, 1, cart["p1"].Quantity)
}

func TestCartService_AddUpgradesLegacyEntry(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart := models.Cart{"p1": {Quantity: 2, Legacy: true}}
	cart, changed := svc.Add(cart, "p1")
	assert.True(t, changed)

	entry := cart["p1"]
	assert.False(t, entry.Legacy)
	assert.Equal(t, 3, entry.Quantity)
	assert.Equal(t, "Laptop", entry.Title)
	assert.Equal(t, "100.00", entry.Price.String())
}

func TestCartService_RemoveThenAddStartsFresh(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart, _ := svc.Add(models.NewCart(), "p1")
	cart, _ = svc.Add(cart, "p1")

	cart, changed := svc.Remove(cart, "p1")
	assert.True(t, changed)
	assert.Empty(t, cart)

	cart, _ = svc.Add(cart, "p1")
	assert.Equal(t, 1, cart["p1"].Quantity)
}

func TestCartService_RemoveAbsentIsNoOp(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart, changed := svc.Remove(models.NewCart(), "p1")
	assert.False(t, changed)
	assert.Empty(t, cart)
}

func TestCartService_ViewTotals(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart, _ := svc.Add(models.NewCart(), "p1")
	cart, _ = svc.Add(cart, "p1")
	cart, _ = svc.Add(cart, "p2")

	view, _, changed := svc.View(cart)
	assert.False(t, changed)

	assert.Len(t, view.Lines, 2)
	assert.Equal(t, "p1", view.Lines[0].ProductID)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "200.00", view.Lines[0].Subtotal.String())
	assert.Equal(t, "p2", view.Lines[1].ProductID)
	assert.Equal(t, 1, view.Lines[1].Quantity)
	assert.Equal(t, "50.00", view.Lines[1].Subtotal.String())

	assert.Equal(t, "250.00", view.Subtotal.String())
	assert.Equal(t, "0.00", view.Shipping.String())
	assert.Equal(t, "250.00", view.Total.String())
}

func TestCartService_ViewAppliesShippingFee(t *testing.T) {
	svc := newCartService(t, "99.00")

	cart, _ := svc.Add(models.NewCart(), "p2")
	view, _, _ := svc.View(cart)

	assert.Equal(t, "50.00", view.Subtotal.String())
	assert.Equal(t, "99.00", view.Shipping.String())
	assert.Equal(t, "149.00", view.Total.String())
}

func TestCartService_ViewEmptyCartHasZeroTotals(t *testing.T) {
	// The fee only applies to non-empty carts: an empty cart renders all
	// zeroes even when a shipping fee is configured.
	svc := newCartService(t, "99.00")

	view, cart, changed := svc.View(nil)
	assert.False(t, changed)
	assert.Empty(t, cart)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0.00", view.Subtotal.String())
	assert.Equal(t, "0.00", view.Shipping.String())
	assert.Equal(t, "0.00", view.Total.String())
}

func TestCartService_ViewUpgradesLegacyEntry(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart := models.Cart{"p1": {Quantity: 3, Legacy: true}}
	view, cart, changed := svc.View(cart)
	assert.True(t, changed)

	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, "Laptop", view.Lines[0].Title)
	assert.Equal(t, "100.00", view.Lines[0].Price.String())
	assert.Equal(t, "300.00", view.Lines[0].Subtotal.String())

	// The corrected state carries the structured entry.
	assert.False(t, cart["p1"].Legacy)
	assert.Equal(t, "Laptop", cart["p1"].Title)
}

func TestCartService_ViewDropsUnresolvableLegacyEntry(t *testing.T) {
	svc := newCartService(t, "0.00")

	cart := models.Cart{
		"gone": {Quantity: 2, Legacy: true},
		"p1":   {Quantity: 1, Legacy: true},
	}
	view, cart, changed := svc.View(cart)
	assert.True(t, changed)

	assert.Len(t, view.Lines, 1)
	assert.Equal(t, "p1", view.Lines[0].ProductID)
	assert.NotContains(t, cart, "gone")
	assert.Equal(t, "100.00", view.Total.String())
}

func TestCartService_StructuredEntrySurvivesCatalogRemoval(t *testing.T) {
	// Only legacy entries need the catalog; a structured line keeps its
	// snapshot even when the product is no longer listed.
	catalog, _ := seededCatalog(t)
	svc := services.NewCartService(catalog, models.Money{}, nil)

	cart := models.Cart{
		"discontinued": {Quantity: 2, Title: "Old Thing", Price: models.NewMoney(decimal.RequireFromString("10.00"))},
	}
	view, _, changed := svc.View(cart)
	assert.False(t, changed)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, "20.00", view.Total.String())
}
