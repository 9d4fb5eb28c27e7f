package models

import (
	"encoding/json"
	"fmt"
)

// Cart is the session-scoped mapping from product id to cart entry. It is
// never persisted to the database; the hosting layer stores it in the
// session bag and writes back whatever state the cart service returns.
type Cart map[string]CartEntry

// NewCart returns an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// CartEntry is one cart line. It is an explicit tagged variant: older
// sessions stored a bare integer quantity per product, newer ones store the
// structured line with a title/price/image snapshot taken at add time.
// Decoding accepts both shapes; encoding always writes the structured shape,
// so an upgraded entry is never written back in the legacy form.
type CartEntry struct {
	Quantity int    `json:"qty"`
	Title    string `json:"title"`
	Price    Money  `json:"price"`
	ImageURL string `json:"img"`

	// Legacy marks an entry decoded from the bare-integer shape. Such an
	// entry carries only a quantity and must be resolved against the
	// catalog before it is rendered or incremented.
	Legacy bool `json:"-"`
}

// cartEntryAlias avoids recursing into CartEntry's own JSON methods.
type cartEntryAlias struct {
	Quantity int    `json:"qty"`
	Title    string `json:"title"`
	Price    Money  `json:"price"`
	ImageURL string `json:"img"`
}

// UnmarshalJSON decodes either a bare integer (legacy quantity) or the
// structured line object.
func (e *CartEntry) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty cart entry")
	}
	if b[0] != '{' {
		var qty int
		if err := json.Unmarshal(b, &qty); err != nil {
			return fmt.Errorf("invalid cart entry: %w", err)
		}
		*e = CartEntry{Quantity: qty, Legacy: true}
		return nil
	}
	var alias cartEntryAlias
	if err := json.Unmarshal(b, &alias); err != nil {
		return err
	}
	*e = CartEntry{
		Quantity: alias.Quantity,
		Title:    alias.Title,
		Price:    alias.Price,
		ImageURL: alias.ImageURL,
	}
	return nil
}

// MarshalJSON always writes the structured shape.
func (e CartEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartEntryAlias{
		Quantity: e.Quantity,
		Title:    e.Title,
		Price:    e.Price,
		ImageURL: e.ImageURL,
	})
}
