package models

import (
	"gorm.io/gorm"
)

const (
	AlertTypeCancellation = "cancellation"
)

// Alert is a persisted dashboard notification. Creation also publishes a
// fire-and-forget hint on the Redis alerts channel; the row here is the
// durable copy the dashboard lists.
type Alert struct {
	gorm.Model
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	AppointmentID uint   `json:"appointment_id"`
	Read          bool   `json:"read" gorm:"default:false"`
}
