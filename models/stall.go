package models

import "time"

type Stall struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	HawkerCentreID uint         `gorm:"not null;index" json:"hawker_centre_id"`
	HawkerCentre   HawkerCentre `gorm:"foreignKey:HawkerCentreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// Denormalized so stall rows can be filtered by centre name directly.
	HawkerCentreName string     `gorm:"type:varchar(255);index;not null" json:"hawker_centre_name"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Cuisine          string     `gorm:"type:varchar(100)" json:"cuisine"`
	QueueLength      int        `gorm:"not null;default:0" json:"queue_length"` // waiting time in minutes
	Rating           float64    `gorm:"type:decimal(3,1);default:0.0" json:"rating"`
	MenuItems        []MenuItem `gorm:"foreignKey:StallID" json:"menu_items,omitempty"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}
