package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index" json:"customerId"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BusinessID uint     `gorm:"index" json:"businessId"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// StaffID is null while the appointment is unclaimed.
	StaffID *uint  `gorm:"index" json:"staffId"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Date is the start of the booked slot.
	Date time.Time `gorm:"index" json:"date"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// CompletionOtp is set only while a completion verification is
	// outstanding. Cleared together with OtpExpires on success.
	CompletionOtp *string    `gorm:"size:6" json:"-"`
	OtpExpires    *time.Time `json:"-"`

	Notes string `gorm:"size:255" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
