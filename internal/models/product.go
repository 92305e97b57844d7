package models

import "time"

// Product represents a purchasable item in the catalog.
type Product struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Category         string    `json:"category" gorm:"not null"`
	Quantity         int       `json:"quantity" gorm:"not null"`
	PricePerQuantity float64   `json:"price_per_quantity" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null"`
	Verified         bool      `json:"verified"`
	CreatedAt        time.Time `json:"created_at"` // set once by the store; listings sort on it
}

// NewProduct is the payload for creating a product. Every field except
// Verified is required; Verified defaults to true when omitted, and an
// explicit false is stored as sent.
type NewProduct struct {
	Title            string  `json:"title" validate:"required"`
	Category         string  `json:"category" validate:"required"`
	Quantity         int     `json:"quantity" validate:"required"`
	PricePerQuantity float64 `json:"price_per_quantity" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	Verified         *bool   `json:"verified"`
}

// ProductUpdate is a partial update of a product. Only non-nil fields are
// written, so the struct itself is the allow-list: a request can never touch
// anything outside it, id and created_at included.
type ProductUpdate struct {
	Title            *string  `json:"title"`
	Category         *string  `json:"category"`
	Quantity         *int     `json:"quantity"`
	PricePerQuantity *float64 `json:"price_per_quantity"`
	Description      *string  `json:"description"`
	Verified         *bool    `json:"verified"`
}

// Changes returns the column assignments for the fields present in the
// update. An empty map means the request carried no recognized fields.
func (u ProductUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Category != nil {
		changes["category"] = *u.Category
	}
	if u.Quantity != nil {
		changes["quantity"] = *u.Quantity
	}
	if u.PricePerQuantity != nil {
		changes["price_per_quantity"] = *u.PricePerQuantity
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Verified != nil {
		changes["verified"] = *u.Verified
	}
	return changes
}
