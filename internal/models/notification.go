package models

import "time"

// Notification is the persisted copy of every dispatched event. The
// live copy goes out over the pub/sub channel; this row is what the
// user sees when they reconnect.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"index" json:"userId"`
	Event  string `gorm:"size:50" json:"event"`

	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:500" json:"message"`
	Payload string `gorm:"type:text" json:"payload,omitempty"`

	ReadAt *time.Time `json:"readAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
