package handlers

import (
	"errors"
	"fmt"

	"shopfront/internal/services"
	"shopfront/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and logout. Login establishes the
// authenticated-session marker in the cookie session; there are no bearer
// tokens.
type AuthHandler struct {
	service  *services.AuthService
	store    *fibersession.Store
	validate *validator.Validate
	log      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService, store *fibersession.Store, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/login", h.HandleLoginPage)
	router.Post("/login", h.HandleLogin)
	router.Get("/register", h.HandleRegisterPage)
	router.Post("/register", h.HandleRegister)
	router.Post("/logout", h.HandleLogout)
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest represents the registration form.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// HandleLoginPage serves the login form context.
func (h *AuthHandler) HandleLoginPage(c *fiber.Ctx) error {
	resp := fiber.Map{"page": "login"}
	if sess, err := h.store.Get(c); err == nil {
		if flash, ok := session.TakeFlash(sess); ok {
			resp["flash"] = flash
			if err := sess.Save(); err != nil {
				h.log.Warn("failed to save session after flash", zap.Error(err))
			}
		}
	}
	return c.JSON(resp)
}

// HandleRegisterPage serves the registration form context. The original
// storefront shares one template between login and registration.
func (h *AuthHandler) HandleRegisterPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "register"})
}

// HandleLogin authenticates the user and establishes the session marker.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username or password",
			})
		}
		h.log.Error("login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log in",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error("session failure during login", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}
	session.SetUser(sess, user)
	if err := sess.Save(); err != nil {
		h.log.Error("failed to save session during login", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleRegister creates a new account and redirects to the login page.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	if _, err := h.service.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username already taken",
			})
		}
		h.log.Error("registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	if sess, err := h.store.Get(c); err == nil {
		session.SetFlash(sess, "Account created! Please login.")
		if err := sess.Save(); err != nil {
			h.log.Warn("failed to save session after registration", zap.Error(err))
		}
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLogout clears the authenticated-session marker. Idempotent; the
// cart is deliberately left in place.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Error("session failure during logout", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}
	session.ClearUser(sess)
	if err := sess.Save(); err != nil {
		h.log.Error("failed to save session during logout", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Session unavailable",
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// validationFailed renders validator errors as a field -> message map.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
