package middleware

import (
	"errors"

	"shopfront/internal/repositories"
	"shopfront/internal/session"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

// LoginRequired guards routes that need an authenticated session. Requests
// without the session marker are redirected to the login page. The marker is
// validated against the user store, so a session pointing at a deleted
// account is cleared and treated as logged out; for everyone else the user id
// and username are placed into the request locals.
func LoginRequired(store *fibersession.Store, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Session unavailable",
			})
		}

		userID := session.UserID(sess)
		if userID == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		user, err := users.GetByID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				session.ClearUser(sess)
				if err := sess.Save(); err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"message": "Session unavailable",
					})
				}
				return c.Redirect("/login", fiber.StatusFound)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify session",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		return c.Next()
	}
}
