package dto

import "time"

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"serviceName"`
	CustomerName string    `json:"customerName,omitempty"`
	StaffName    string    `json:"staffName,omitempty"`
}
