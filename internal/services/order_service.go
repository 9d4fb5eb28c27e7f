package services

import (
	"fmt"
	"time"

	"shopfront/internal/models"
	"shopfront/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles checkout: turning a cart snapshot into a persisted
// order with its line items.
type OrderService struct {
	orderRepo repositories.OrderRepository
	catalog   *CatalogService
	cart      *CartService
	publisher OrderEventPublisher
	log       *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case no events are emitted.
func NewOrderService(orderRepo repositories.OrderRepository, catalog *CatalogService, cart *CartService, publisher OrderEventPublisher, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		catalog:   catalog,
		cart:      cart,
		publisher: publisher,
		log:       log,
	}
}

// CheckoutInput carries the shipping details from the checkout form.
type CheckoutInput struct {
	Name    string
	Address string
	Phone   string
}

// Checkout creates one order owned by userID from the cart snapshot. Totals
// are computed the same way the cart view computes them, and one order item
// is created per cart line with the product's current price as its snapshot.
// The order and its items are persisted as a single atomic unit: if any item
// cannot be created (for example the product vanished concurrently), the
// whole checkout fails and no partial order is left behind.
//
// On success the caller is responsible for clearing the originating cart
// from the session.
func (s *OrderService) Checkout(userID string, in CheckoutInput, cart models.Cart) (*models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	view, _, _ := s.cart.View(cart)

	items := make([]models.OrderItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		product, err := s.catalog.GetProductByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("checkout: product %s: %w", line.ProductID, err)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Subtotal:  view.Subtotal,
		Shipping:  view.Shipping,
		Total:     view.Total,
		IsPaid:    false,
		Items:     items,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishCreated(order)
	return order, nil
}

// GetOrderByID retrieves a single order with its items.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// publishCreated emits an order.created event. Publish failures are logged
// and never fail the checkout.
func (s *OrderService) publishCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"total":    order.Total.String(),
		"items":    len(order.Items),
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		s.log.Warn("failed to publish order created event", zap.String("order_id", order.ID), zap.Error(err))
		return
	}
	s.log.Info("published order created event", zap.String("order_id", order.ID))
}
