package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSettings() ClinicSettings {
	return ClinicSettings{
		RegularHours: TimeInterval{StartTime: "09:00", EndTime: "17:00"},
		IsOpen:       true,
	}
}

func TestTimeIntervalValidate(t *testing.T) {
	assert.NoError(t, TimeInterval{StartTime: "09:00", EndTime: "17:00"}.Validate())
	assert.Error(t, TimeInterval{StartTime: "17:00", EndTime: "09:00"}.Validate())
	assert.Error(t, TimeInterval{StartTime: "09:00", EndTime: "09:00"}.Validate())
	assert.Error(t, TimeInterval{StartTime: "9am", EndTime: "17:00"}.Validate())
	assert.Error(t, TimeInterval{StartTime: "09:00", EndTime: "25:00"}.Validate())
}

func TestClinicSettingsValidate(t *testing.T) {
	settings := validSettings()
	assert.NoError(t, settings.Validate())

	settings = validSettings()
	settings.RegularHours.EndTime = "08:00"
	assert.Error(t, settings.Validate())

	settings = validSettings()
	bad := TimeInterval{StartTime: "14:00", EndTime: "10:00"}
	settings.SaturdayHours = &bad
	assert.Error(t, settings.Validate())

	settings = validSettings()
	settings.CustomHours = DateOverrideList{{Date: "25-12-2024"}}
	assert.Error(t, settings.Validate())

	settings = validSettings()
	settings.CustomHours = DateOverrideList{{Date: "2024-12-25"}} // closed date, nil hours
	assert.NoError(t, settings.Validate())

	settings = validSettings()
	settings.RecurringClosures = RecurringClosureList{{Month: 13, DayOfMonth: 1}}
	assert.Error(t, settings.Validate())

	settings = validSettings()
	settings.RecurringClosures = RecurringClosureList{{Month: 2, DayOfMonth: 32}}
	assert.Error(t, settings.Validate())

	// Feb 30 passes validation; it simply never matches a real date
	settings = validSettings()
	settings.RecurringClosures = RecurringClosureList{{Month: 2, DayOfMonth: 30}}
	assert.NoError(t, settings.Validate())
}

func TestClinicSettingsAllowsDuplicateOverrides(t *testing.T) {
	// Duplicates are legal; the resolver applies the last entry
	settings := validSettings()
	open := TimeInterval{StartTime: "10:00", EndTime: "12:00"}
	settings.CustomHours = DateOverrideList{
		{Date: "2024-12-25", Hours: &open},
		{Date: "2024-12-25"},
	}
	assert.NoError(t, settings.Validate())
}
