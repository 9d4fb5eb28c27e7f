package models_test

import (
	"encoding/json"
	"testing"

	"shopfront/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartEntry_UnmarshalLegacyInteger(t *testing.T) {
	var cart models.Cart
	err := json.Unmarshal([]byte(`{"p1": 3}`), &cart)
	assert.NoError(t, err)

	entry, ok := cart["p1"]
	assert.True(t, ok)
	assert.True(t, entry.Legacy)
	assert.Equal(t, 3, entry.Quantity)
	assert.Empty(t, entry.Title)
}

func TestCartEntry_UnmarshalStructured(t *testing.T) {
	var cart models.Cart
	err := json.Unmarshal([]byte(`{"p2": {"qty": 2, "title": "Keyboard", "price": "3499.00", "img": "https://example.com/kb.jpg"}}`), &cart)
	assert.NoError(t, err)

	entry := cart["p2"]
	assert.False(t, entry.Legacy)
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, "Keyboard", entry.Title)
	assert.Equal(t, "3499.00", entry.Price.String())
	assert.Equal(t, "https://example.com/kb.jpg", entry.ImageURL)
}

func TestCartEntry_UnmarshalMixedShapes(t *testing.T) {
	var cart models.Cart
	err := json.Unmarshal([]byte(`{"p1": 5, "p2": {"qty": 1, "title": "Mouse", "price": "1599.00", "img": ""}}`), &cart)
	assert.NoError(t, err)
	assert.Len(t, cart, 2)
	assert.True(t, cart["p1"].Legacy)
	assert.False(t, cart["p2"].Legacy)
}

func TestCartEntry_MarshalAlwaysStructured(t *testing.T) {
	// A legacy entry must never be written back in the bare-integer shape.
	cart := models.Cart{
		"p1": {Quantity: 4, Legacy: true},
	}
	b, err := json.Marshal(cart)
	assert.NoError(t, err)

	var roundTripped models.Cart
	assert.NoError(t, json.Unmarshal(b, &roundTripped))
	assert.False(t, roundTripped["p1"].Legacy)
	assert.Equal(t, 4, roundTripped["p1"].Quantity)
}

func TestCartEntry_UnmarshalRejectsGarbage(t *testing.T) {
	var entry models.CartEntry
	assert.Error(t, entry.UnmarshalJSON([]byte(`"nonsense"`)))
	assert.Error(t, entry.UnmarshalJSON(nil))
}

func TestMoney_ArithmeticRoundsToTwoDigits(t *testing.T) {
	price := models.NewMoney(decimal.RequireFromString("19.99"))
	assert.Equal(t, "59.97", price.MulInt(3).String())
	assert.Equal(t, "79.96", price.MulInt(3).Add(price).String())
}
