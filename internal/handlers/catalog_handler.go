package handlers

import (
	"errors"

	"shopfront/internal/services"
	"shopfront/internal/session"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// CatalogHandler serves the product listing and detail pages.
type CatalogHandler struct {
	service *services.CatalogService
	store   *fibersession.Store
	log     *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, store *fibersession.Store, log *zap.Logger) *CatalogHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/product/:id", h.HandleProductDetail)
}

// HandleIndex lists all products. Any pending flash notice (checkout or
// registration success) is delivered here exactly once.
func (h *CatalogHandler) HandleIndex(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}

	resp := fiber.Map{
		"products": products,
	}

	sess, err := h.store.Get(c)
	if err == nil {
		if flash, ok := session.TakeFlash(sess); ok {
			resp["flash"] = flash
			if err := sess.Save(); err != nil {
				h.log.Warn("failed to save session after flash", zap.Error(err))
			}
		}
		if username := session.Username(sess); username != "" {
			resp["username"] = username
		}
	}

	return c.JSON(resp)
}

// HandleProductDetail serves a single product, 404 when the id is unknown.
func (h *CatalogHandler) HandleProductDetail(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		h.log.Error("failed to get product", zap.String("product_id", productID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}
