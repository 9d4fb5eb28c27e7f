package models

import "time"

// Order represents a checkout event with its shipping details and totals.
// Orders are immutable after creation except for the unpaid -> paid transition.
// Invariant: Total = Subtotal + Shipping, enforced by the order service.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Name      string      `json:"name" gorm:"type:varchar(200);not null"`
	Address   string      `json:"address" gorm:"type:text;not null"`
	Phone     string      `json:"phone" gorm:"type:varchar(20);not null"`
	Subtotal  Money       `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Shipping  Money       `json:"shipping" gorm:"type:decimal(10,2);not null"`
	Total     Money       `json:"total" gorm:"type:decimal(10,2);not null"`
	IsPaid    bool        `json:"is_paid" gorm:"not null;default:false"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is one product line within an order. Price is a snapshot taken
// at order time so later catalog price changes do not alter past orders.
// The product reference is protected: a product cannot be deleted while
// order items still point at it.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);not null;index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(20);not null;index"`
	Product   Product `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  int     `json:"qty" gorm:"not null;default:1"`
	Price     Money   `json:"price" gorm:"type:decimal(10,2);not null"`
}
