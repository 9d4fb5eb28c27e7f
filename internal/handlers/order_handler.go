package handlers

import (
	"errors"

	"shopfront/internal/services"
	"shopfront/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// OrderHandler serves checkout. Its routes are registered behind the
// LoginRequired middleware, which puts the user id into the request locals.
type OrderHandler struct {
	service  *services.OrderService
	store    *fibersession.Store
	validate *validator.Validate
	log      *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, store *fibersession.Store, log *zap.Logger) *OrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the checkout routes. router is expected to carry
// the LoginRequired middleware already.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/checkout", h.HandleCheckoutPage)
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest represents the shipping form. Every field is required;
// missing fields are surfaced to the user instead of being accepted blank.
type CheckoutRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Address string `json:"address" form:"address" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required,max=20"`
}

// HandleCheckoutPage serves the shipping form context.
func (h *OrderHandler) HandleCheckoutPage(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	return c.JSON(fiber.Map{
		"page":     "checkout",
		"username": username,
	})
}

// HandleCheckout creates the order from the session cart, clears the cart
// and redirects home with a success notice.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error("session failure during checkout", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}

	userID, _ := c.Locals("user_id").(string)
	order, err := h.service.Checkout(userID, services.CheckoutInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}, session.LoadCart(sess))
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		// Whatever went wrong, the atomic write guarantees no partial
		// order is visible; a generic failure is all the user sees.
		h.log.Error("checkout failed", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
		})
	}

	session.ClearCart(sess)
	session.SetFlash(sess, "Order placed successfully!")
	if err := sess.Save(); err != nil {
		h.log.Error("failed to save session after checkout", zap.String("order_id", order.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}

	h.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.String("total", order.Total.String()),
	)
	return c.Redirect("/", fiber.StatusSeeOther)
}
