package utils

import (
	"github.com/clinicdesk/clinic-api/models"
	"gorm.io/gorm"
)

// CheckSlotFree reports whether the interval starting at date/startTime is
// free of non-cancelled bookings. Conflicting rows are locked until the
// surrounding transaction ends, so a create inside the same transaction
// cannot race a concurrent booking for an overlapping interval.
func CheckSlotFree(tx *gorm.DB, date, startTime string, durationMinutes int) (bool, error) {
	var existing models.Appointment
	err := tx.Raw(`
		SELECT *
		FROM appointments
		WHERE appointment_date = ?
		  AND status != ?
		  AND deleted_at IS NULL
		  AND appointment_time::time < ?::time + make_interval(mins => ?)
		  AND appointment_time::time + make_interval(mins => COALESCE(NULLIF(duration_minutes, 0), ?)) > ?::time
		FOR UPDATE
		LIMIT 1
	`, date, models.StatusCancelled, startTime, durationMinutes, models.DefaultDurationMinutes, startTime).
		Scan(&existing).Error

	// If there is any conflicting appointment, the slot is taken
	if err == nil && existing.ID != 0 {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
