package models

import "time"

// BusinessHour holds one weekday's open window as business-local wall
// clock times ("HH:mm"). One row per (business, weekday).
type BusinessHour struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index" json:"businessId"`

	Weekday int `json:"weekday"`

	IsOpen    bool   `json:"isOpen"`
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
