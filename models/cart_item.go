package models

import "time"

// CartItem is one pending-order line for a customer. At most one row may
// exist per (customer, menu item); the unique index backs the atomic
// upsert in the cart store.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_customer_item" json:"customer_id"`
	StallID    uint      `gorm:"not null" json:"stall_id"`
	StallName  string    `gorm:"type:varchar(255)" json:"stall_name"` // denormalized for display
	ItemID     uint      `gorm:"not null;uniqueIndex:idx_cart_customer_item" json:"item_id"`
	ItemName   string    `gorm:"type:varchar(255)" json:"item_name"` // denormalized for display
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
