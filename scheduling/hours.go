package scheduling

import (
	"time"

	"github.com/clinicdesk/clinic-api/models"
)

// ResolveOperatingHours returns the effective open interval for a date, or nil
// when the clinic is closed that day. Precedence, first match wins:
// a custom-hours override for the exact date (last entry wins on duplicates),
// a recurring closure on the date's month/day, Saturday hours, Sunday hours,
// weekday regular hours. settings.IsOpen is a caller-level gate and is not
// consulted here.
func ResolveOperatingHours(date time.Time, settings *models.ClinicSettings) *models.TimeInterval {
	dateKey := date.Format("2006-01-02")

	matched := false
	var hours *models.TimeInterval
	for i := range settings.CustomHours {
		if settings.CustomHours[i].Date == dateKey {
			matched = true
			hours = settings.CustomHours[i].Hours
		}
	}
	if matched {
		if hours == nil {
			return nil
		}
		h := *hours
		return &h
	}

	for _, closure := range settings.RecurringClosures {
		if int(date.Month()) == closure.Month && date.Day() == closure.DayOfMonth {
			return nil
		}
	}

	switch date.Weekday() {
	case time.Saturday:
		if settings.SaturdayHours == nil {
			return nil
		}
		h := *settings.SaturdayHours
		return &h
	case time.Sunday:
		if settings.SundayHours == nil {
			return nil
		}
		h := *settings.SundayHours
		return &h
	default:
		h := settings.RegularHours
		return &h
	}
}
