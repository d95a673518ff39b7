package models

import "time"

type MenuItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StallID        uint      `gorm:"not null;index" json:"stall_id"`
	Stall          Stall     `gorm:"foreignKey:StallID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Price          float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category       string    `gorm:"type:varchar(100)" json:"category"`
	NumberOfOrders int       `gorm:"not null;default:0" json:"number_of_orders"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
