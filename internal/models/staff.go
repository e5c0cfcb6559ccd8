package models

import "time"

// Staff belongs to exactly one business. UserID stays null until the
// invited person accepts and links their account.
type Staff struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"businessId"`

	UserID *uint `gorm:"index" json:"userId"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
