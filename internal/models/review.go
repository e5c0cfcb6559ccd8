package models

import "time"

type Review struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"businessId"`
	CustomerID uint `json:"customerId"`

	Rating  int    `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
