package repositories

import (
	"shopfront/internal/models"
)

// OrderRepository defines the interface for order data access.
// Create must persist the order and its items as a single atomic unit: a
// failure on any item leaves no partial order behind.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// MarkPaid performs the only mutation an order allows: unpaid -> paid.
	MarkPaid(id string) error
}
