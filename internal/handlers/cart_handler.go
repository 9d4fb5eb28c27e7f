package handlers

import (
	"shopfront/internal/models"
	"shopfront/internal/services"
	"shopfront/internal/session"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// CartHandler serves the session-backed cart. It owns the session round trip:
// load the cart, hand it to the cart service, and persist whatever state the
// service returns whenever it reports a change.
type CartHandler struct {
	service *services.CartService
	store   *fibersession.Store
	log     *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, store *fibersession.Store, log *zap.Logger) *CartHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/cart", h.HandleViewCart)
	router.Post("/cart/add/:productId", h.HandleAddToCart)
	router.Post("/cart/remove/:productId", h.HandleRemoveFromCart)
}

// HandleViewCart renders the cart lines and totals. If the pass upgraded or
// dropped legacy entries, the corrected cart is written back first.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	view, cart, changed := h.service.View(session.LoadCart(sess))
	if changed {
		if err := h.saveCart(sess, cart); err != nil {
			return h.sessionError(c, err)
		}
	}

	return c.JSON(view)
}

// HandleAddToCart adds one unit of the product and redirects to the cart
// view. An unknown product id leaves the cart untouched.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	cart, changed := h.service.Add(session.LoadCart(sess), c.Params("productId"))
	if changed {
		if err := h.saveCart(sess, cart); err != nil {
			return h.sessionError(c, err)
		}
	}

	return c.Redirect("/cart", fiber.StatusSeeOther)
}

// HandleRemoveFromCart deletes the product's line and redirects to the cart
// view. Removing an absent product is a no-op.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return h.sessionError(c, err)
	}

	cart, changed := h.service.Remove(session.LoadCart(sess), c.Params("productId"))
	if changed {
		if err := h.saveCart(sess, cart); err != nil {
			return h.sessionError(c, err)
		}
	}

	return c.Redirect("/cart", fiber.StatusSeeOther)
}

func (h *CartHandler) saveCart(sess *fibersession.Session, cart models.Cart) error {
	if err := session.SaveCart(sess, cart); err != nil {
		return err
	}
	return sess.Save()
}

func (h *CartHandler) sessionError(c *fiber.Ctx, err error) error {
	h.log.Error("session failure", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Session unavailable",
	})
}
