package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TimeInterval is a same-day open interval. Times are zero-padded 24h "HH:MM"
// strings, so lexicographic order matches chronological order.
type TimeInterval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Value implements the driver.Valuer interface
func (t TimeInterval) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (t *TimeInterval) Scan(value interface{}) error {
	return scanJSON(value, t)
}

// Validate checks the "HH:MM" format and the start < end invariant.
func (t TimeInterval) Validate() error {
	if _, err := time.Parse("15:04", t.StartTime); err != nil {
		return fmt.Errorf("invalid start time %q, use HH:MM", t.StartTime)
	}
	if _, err := time.Parse("15:04", t.EndTime); err != nil {
		return fmt.Errorf("invalid end time %q, use HH:MM", t.EndTime)
	}
	if t.StartTime >= t.EndTime {
		return fmt.Errorf("start time %s must be before end time %s", t.StartTime, t.EndTime)
	}
	return nil
}

// DateOverride pins the hours for one specific calendar date. Hours nil means
// the clinic is closed that date regardless of weekday defaults.
type DateOverride struct {
	Date  string        `json:"date"` // Format "YYYY-MM-DD"
	Hours *TimeInterval `json:"hours"`
}

// RecurringClosure closes the clinic every year on the given month and day,
// e.g. a fixed public holiday. There is no year field.
type RecurringClosure struct {
	Month       int    `json:"month"`        // 1-12
	DayOfMonth  int    `json:"day_of_month"` // 1-31
	Description string `json:"description"`
}

type DateOverrideList []DateOverride

// Value implements the driver.Valuer interface
func (l DateOverrideList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *DateOverrideList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type RecurringClosureList []RecurringClosure

// Value implements the driver.Valuer interface
func (l RecurringClosureList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *RecurringClosureList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONB column: unsupported type %T", value)
	}

	return json.Unmarshal(data, dest)
}

// ClinicSettings is the single operating-hours configuration for the clinic.
// One logical row; loaded wholesale before any slot computation and updated
// only through the admin settings endpoint.
type ClinicSettings struct {
	gorm.Model
	RegularHours      TimeInterval         `json:"regular_hours" gorm:"type:jsonb"`
	SaturdayHours     *TimeInterval        `json:"saturday_hours" gorm:"type:jsonb"`
	SundayHours       *TimeInterval        `json:"sunday_hours" gorm:"type:jsonb"`
	CustomHours       DateOverrideList     `json:"custom_hours" gorm:"type:jsonb"`
	RecurringClosures RecurringClosureList `json:"recurring_closures" gorm:"type:jsonb"`
	IsOpen            bool                 `json:"is_open" gorm:"default:true"`
}

// Validate checks every configured interval, override and closure. Duplicate
// override dates are allowed; the last entry wins at resolution time.
func (s *ClinicSettings) Validate() error {
	if err := s.RegularHours.Validate(); err != nil {
		return fmt.Errorf("regular hours: %v", err)
	}
	if s.SaturdayHours != nil {
		if err := s.SaturdayHours.Validate(); err != nil {
			return fmt.Errorf("saturday hours: %v", err)
		}
	}
	if s.SundayHours != nil {
		if err := s.SundayHours.Validate(); err != nil {
			return fmt.Errorf("sunday hours: %v", err)
		}
	}
	for i, override := range s.CustomHours {
		if _, err := time.Parse("2006-01-02", override.Date); err != nil {
			return fmt.Errorf("custom hours entry %d: invalid date %q, use YYYY-MM-DD", i, override.Date)
		}
		if override.Hours != nil {
			if err := override.Hours.Validate(); err != nil {
				return fmt.Errorf("custom hours entry %d: %v", i, err)
			}
		}
	}
	for i, closure := range s.RecurringClosures {
		if closure.Month < 1 || closure.Month > 12 {
			return fmt.Errorf("recurring closure %d: month %d out of range", i, closure.Month)
		}
		if closure.DayOfMonth < 1 || closure.DayOfMonth > 31 {
			return fmt.Errorf("recurring closure %d: day of month %d out of range", i, closure.DayOfMonth)
		}
	}
	return nil
}
