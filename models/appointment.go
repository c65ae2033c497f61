package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// DefaultDurationMinutes is assumed for conflict checks when a booking row
// carries no duration.
const DefaultDurationMinutes = 30

// Appointment is a patient booking. Date and time are kept as the textual
// forms the booking UI exchanges ("YYYY-MM-DD" and 24h "HH:MM"); the duration
// is snapshotted from the service at booking time so later service edits do
// not move existing bookings.
type Appointment struct {
	gorm.Model
	Reference       string            `json:"reference" gorm:"uniqueIndex"`
	PatientName     string            `json:"patient_name"`
	PatientEmail    string            `json:"patient_email"`
	AppointmentDate string            `json:"appointment_date" gorm:"index"`
	AppointmentTime string            `json:"appointment_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Reason          string            `json:"reason"`
	ServiceID       uint              `json:"service_id"`
	Service         Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Status          AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	return nil
}

// CanTransitionTo enforces the booking state machine:
// pending -> confirmed | cancelled; confirmed -> completed | cancelled;
// completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) error {
	switch s {
	case StatusPending:
		if next != StatusConfirmed && next != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusConfirmed:
		if next != StatusCompleted && next != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", next)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", s)
	default:
		return fmt.Errorf("unknown status %s", s)
	}
	return nil
}

// UpdateStatus transitions the appointment and persists it. Side effects of a
// transition (emails, alerts) belong to the caller.
func (a *Appointment) UpdateStatus(tx *gorm.DB, next AppointmentStatus) error {
	if err := a.Status.CanTransitionTo(next); err != nil {
		return err
	}
	a.Status = next
	return tx.Save(a).Error
}

// StartAt parses the booking's date and time in the given location.
func (a *Appointment) StartAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.AppointmentDate+" "+a.AppointmentTime, loc)
}

// EndAt is StartAt plus the booked duration, falling back to
// DefaultDurationMinutes when the row carries none.
func (a *Appointment) EndAt(loc *time.Location) (time.Time, error) {
	start, err := a.StartAt(loc)
	if err != nil {
		return time.Time{}, err
	}
	minutes := a.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	return start.Add(time.Duration(minutes) * time.Minute), nil
}
