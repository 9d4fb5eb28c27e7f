package models

import "github.com/shopspring/decimal"

// SeedProducts returns the fixed catalog dataset loaded on first start.
// Runtime catalog changes go through administrative tooling, not the app.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Title:       "MacBook Pro",
			Price:       NewMoney(decimal.RequireFromString("159900.00")),
			Description: "Lightweight laptop with 32GB RAM and 1TB SSD.",
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p2",
			Title:       "iPhone 16 Pro",
			Price:       NewMoney(decimal.RequireFromString("540000.00")),
			Description: "6.1 inch AMOLED display, dual camera, 5000mAh battery.",
			ImageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p3",
			Title:       "boAt Rockerz 650 Pro Wireless Headphone",
			Price:       NewMoney(decimal.RequireFromString("2999.00")),
			Description: "Over-ear with noise cancellation and 40-hour battery.",
			ImageURL:    "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p4",
			Title:       "Noise Pro 6 Smartwatch",
			Price:       NewMoney(decimal.RequireFromString("6999.00")),
			Description: "Fitness tracking, heart-rate, GPS, 1.85 inch AMOLED screen.",
			ImageURL:    "https://images.unsplash.com/photo-1519744792095-2f2205e87b6f?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p5",
			Title:       "Keyboard",
			Price:       NewMoney(decimal.RequireFromString("3499.00")),
			Description: "RGB mechanical keyboard with tactile switches.",
			ImageURL:    "https://images.unsplash.com/photo-1516387938699-a93567ec168e?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p6",
			Title:       "Puma Men's Court Shatter Low Sneakers",
			Price:       NewMoney(decimal.RequireFromString("2100.00")),
			Description: "Low-cut sneakers with a durable leather upper.",
			ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p7",
			Title:       "Gaming Mouse GX Ultra",
			Price:       NewMoney(decimal.RequireFromString("1599.00")),
			Description: "Ergonomic gaming mouse with RGB lighting and 16000 DPI sensor.",
			ImageURL:    "https://m.media-amazon.com/images/I/61mpMH5TzkL._AC_SL1500_.jpg",
		},
		{
			ID:          "p8",
			Title:       "Redmi 13C",
			Price:       NewMoney(decimal.RequireFromString("15999.00")),
			Description: "Smooth 6.74 inch 90Hz display, 50MP AI triple camera.",
			ImageURL:    "https://m.media-amazon.com/images/I/71d1ytcCntL._AC_SL1500_.jpg",
		},
	}
}
