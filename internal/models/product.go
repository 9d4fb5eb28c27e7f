package models

import "time"

// Product represents a catalog entry in the store.
// Products are created by administrative tooling and are read-only at runtime.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(20)"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null" validate:"required,max=200"`
	Price       Money     `json:"price" gorm:"type:decimal(10,2);not null" validate:"required"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"img" gorm:"type:varchar(500)" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
