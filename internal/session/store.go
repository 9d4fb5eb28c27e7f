// Package session owns the per-browser state bag: the shopping cart, the
// authenticated-user marker, and one-shot flash notices. It wraps Fiber's
// session middleware; handlers load state through the helpers here, hand it
// to the services, and write the returned state back.
package session

import (
	"encoding/json"
	"time"

	"shopfront/internal/models"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

// Session value keys.
const (
	cartKey     = "cart"
	userIDKey   = "user_id"
	usernameKey = "username"
	flashKey    = "flash"
)

// NewStore builds the session store. storage may be nil, in which case Fiber's
// in-memory storage is used; pass a RedisStorage to share sessions across
// processes.
func NewStore(storage fiber.Storage, expiration time.Duration) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		KeyLookup:      "cookie:session_id",
		Expiration:     expiration,
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// LoadCart decodes the cart from the session. A missing or undecodable value
// yields an empty cart. Legacy bare-integer entries survive decoding as
// tagged legacy lines; upgrading them is the cart service's job.
func LoadCart(sess *fibersession.Session) models.Cart {
	raw, ok := sess.Get(cartKey).(string)
	if !ok || raw == "" {
		return models.NewCart()
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return models.NewCart()
	}
	return cart
}

// SaveCart encodes the cart into the session. All entries are written in the
// structured shape regardless of how they were read.
func SaveCart(sess *fibersession.Session, cart models.Cart) error {
	b, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	sess.Set(cartKey, string(b))
	return nil
}

// ClearCart empties the cart from the session.
func ClearCart(sess *fibersession.Session) {
	sess.Delete(cartKey)
}

// SetUser records the authenticated-session marker.
func SetUser(sess *fibersession.Session, user *models.User) {
	sess.Set(userIDKey, user.ID)
	sess.Set(usernameKey, user.Username)
}

// UserID returns the authenticated user's id, or "" when not logged in.
func UserID(sess *fibersession.Session) string {
	id, _ := sess.Get(userIDKey).(string)
	return id
}

// Username returns the authenticated user's name, or "".
func Username(sess *fibersession.Session) string {
	name, _ := sess.Get(usernameKey).(string)
	return name
}

// ClearUser removes the authenticated-session marker. Idempotent; the cart
// is left untouched.
func ClearUser(sess *fibersession.Session) {
	sess.Delete(userIDKey)
	sess.Delete(usernameKey)
}

// SetFlash stores a one-shot notice shown on the next page render.
func SetFlash(sess *fibersession.Session, message string) {
	sess.Set(flashKey, message)
}

// TakeFlash returns the pending notice and removes it. Returns "" and false
// when none is pending.
func TakeFlash(sess *fibersession.Session) (string, bool) {
	message, ok := sess.Get(flashKey).(string)
	if !ok || message == "" {
		return "", false
	}
	sess.Delete(flashKey)
	return message, true
}
