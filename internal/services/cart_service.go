package services

import (
	"errors"
	"sort"

	"shopfront/internal/models"

	"go.uber.org/zap"
)

// CartService implements the session-scoped shopping cart. The cart state is
// passed in and returned explicitly; the service never touches the session
// itself. Whenever the returned bool is true, the caller must write the
// returned state back to the session store.
//
// Catalog lookups that fail during cart operations are tolerated as no-ops:
// an unknown product never surfaces an error to the shopper.
type CartService struct {
	catalog     *CatalogService
	shippingFee models.Money
	log         *zap.Logger
}

// NewCartService creates a new CartService. shippingFee is the flat fee
// applied to non-empty carts.
func NewCartService(catalog *CatalogService, shippingFee models.Money, log *zap.Logger) *CartService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartService{
		catalog:     catalog,
		shippingFee: shippingFee,
		log:         log,
	}
}

// CartLineView is one rendered cart line.
type CartLineView struct {
	ProductID string       `json:"product_id"`
	Title     string       `json:"title"`
	ImageURL  string       `json:"img"`
	Quantity  int          `json:"qty"`
	Price     models.Money `json:"price"`
	Subtotal  models.Money `json:"subtotal"`
}

// CartView is the cart rendered with its totals.
// Invariant: Total = Subtotal + Shipping.
type CartView struct {
	Lines    []CartLineView `json:"items"`
	Subtotal models.Money   `json:"subtotal"`
	Shipping models.Money   `json:"shipping"`
	Total    models.Money   `json:"total"`
}

// Add puts one unit of the product into the cart. Adding a product that is
// already present increments its quantity instead of duplicating the line.
// Unknown products are a silent no-op. A legacy bare-quantity entry is
// upgraded to the structured shape before the increment is applied.
func (s *CartService) Add(cart models.Cart, productID string) (models.Cart, bool) {
	if cart == nil {
		cart = models.NewCart()
	}

	entry, ok := cart[productID]
	if ok && !entry.Legacy {
		entry.Quantity++
		cart[productID] = entry
		return cart, true
	}

	// New line or legacy upgrade: either way the snapshot comes from a
	// fresh catalog lookup.
	product, err := s.catalog.GetProductByID(productID)
	if err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			s.log.Warn("cart add: catalog lookup failed", zap.String("product_id", productID), zap.Error(err))
		}
		return cart, false
	}

	quantity := 1
	if ok {
		quantity = entry.Quantity + 1
	}
	cart[productID] = models.CartEntry{
		Quantity: quantity,
		Title:    product.Title,
		Price:    product.Price,
		ImageURL: product.ImageURL,
	}
	return cart, true
}

// Remove deletes the product's line from the cart. Removing an absent
// product is a no-op and reports no change.
func (s *CartService) Remove(cart models.Cart, productID string) (models.Cart, bool) {
	if cart == nil {
		return models.NewCart(), false
	}
	if _, ok := cart[productID]; !ok {
		return cart, false
	}
	delete(cart, productID)
	return cart, true
}

// View renders the cart lines and totals. Any remaining legacy entries are
// upgraded in the same pass; legacy entries whose product no longer resolves
// in the catalog are dropped. If either happened, the returned bool is true
// and the corrected state must be written back to the session.
//
// Lines are ordered by product id so repeated renders of the same cart are
// stable.
func (s *CartService) View(cart models.Cart) (CartView, models.Cart, bool) {
	if cart == nil {
		cart = models.NewCart()
	}

	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	changed := false
	lines := make([]CartLineView, 0, len(ids))
	subtotal := models.Money{}

	for _, id := range ids {
		entry := cart[id]
		if entry.Legacy {
			product, err := s.catalog.GetProductByID(id)
			if err != nil {
				if !errors.Is(err, ErrProductNotFound) {
					s.log.Warn("cart view: catalog lookup failed", zap.String("product_id", id), zap.Error(err))
				}
				// The product is gone; the legacy entry cannot be
				// reconstructed, so the line is dropped.
				delete(cart, id)
				changed = true
				continue
			}
			entry = models.CartEntry{
				Quantity: entry.Quantity,
				Title:    product.Title,
				Price:    product.Price,
				ImageURL: product.ImageURL,
			}
			cart[id] = entry
			changed = true
		}

		lineSubtotal := entry.Price.MulInt(entry.Quantity)
		lines = append(lines, CartLineView{
			ProductID: id,
			Title:     entry.Title,
			ImageURL:  entry.ImageURL,
			Quantity:  entry.Quantity,
			Price:     entry.Price,
			Subtotal:  lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	shipping := models.Money{}
	if len(lines) > 0 {
		shipping = s.shippingFee
	}

	return CartView{
		Lines:    lines,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}, cart, changed
}
