package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/models"
)

func interval(start, end string) models.TimeInterval {
	return models.TimeInterval{StartTime: start, EndTime: end}
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func baseSettings() models.ClinicSettings {
	return models.ClinicSettings{
		RegularHours: interval("09:00", "17:00"),
		IsOpen:       true,
	}
}

func TestResolveRegularWeekday(t *testing.T) {
	settings := baseSettings()

	hours := ResolveOperatingHours(date("2024-06-10"), &settings) // Monday
	require.NotNil(t, hours)
	assert.Equal(t, interval("09:00", "17:00"), *hours)
}

func TestResolveSaturday(t *testing.T) {
	settings := baseSettings()

	// No Saturday hours configured: closed
	assert.Nil(t, ResolveOperatingHours(date("2024-06-08"), &settings))

	sat := interval("10:00", "14:00")
	settings.SaturdayHours = &sat
	hours := ResolveOperatingHours(date("2024-06-08"), &settings)
	require.NotNil(t, hours)
	assert.Equal(t, sat, *hours)
}

func TestResolveSunday(t *testing.T) {
	settings := baseSettings()

	assert.Nil(t, ResolveOperatingHours(date("2024-06-09"), &settings))

	sun := interval("11:00", "13:00")
	settings.SundayHours = &sun
	hours := ResolveOperatingHours(date("2024-06-09"), &settings)
	require.NotNil(t, hours)
	assert.Equal(t, sun, *hours)
}

func TestResolveRecurringClosure(t *testing.T) {
	settings := baseSettings()
	settings.RecurringClosures = models.RecurringClosureList{
		{Month: 12, DayOfMonth: 25, Description: "Christmas"},
	}

	assert.Nil(t, ResolveOperatingHours(date("2024-12-25"), &settings))
	assert.Nil(t, ResolveOperatingHours(date("2025-12-25"), &settings)) // recurs every year

	hours := ResolveOperatingHours(date("2024-12-24"), &settings)
	require.NotNil(t, hours)
}

func TestResolveOverrideClosesDate(t *testing.T) {
	// customHours with nil hours closes a regular Wednesday
	settings := baseSettings()
	settings.CustomHours = models.DateOverrideList{
		{Date: "2024-12-25", Hours: nil},
	}

	assert.Nil(t, ResolveOperatingHours(date("2024-12-25"), &settings))
}

func TestResolveOverrideBeatsClosureAndWeekday(t *testing.T) {
	special := interval("10:00", "12:00")
	settings := baseSettings()
	settings.RecurringClosures = models.RecurringClosureList{
		{Month: 12, DayOfMonth: 25, Description: "Christmas"},
	}
	settings.CustomHours = models.DateOverrideList{
		{Date: "2024-12-25", Hours: &special},
	}

	// The override opens the clinic even though the closure matches
	hours := ResolveOperatingHours(date("2024-12-25"), &settings)
	require.NotNil(t, hours)
	assert.Equal(t, special, *hours)
}

func TestResolveDuplicateOverridesLastWins(t *testing.T) {
	first := interval("08:00", "12:00")
	second := interval("13:00", "18:00")
	settings := baseSettings()
	settings.CustomHours = models.DateOverrideList{
		{Date: "2024-06-10", Hours: &first},
		{Date: "2024-06-10", Hours: &second},
	}

	hours := ResolveOperatingHours(date("2024-06-10"), &settings)
	require.NotNil(t, hours)
	assert.Equal(t, second, *hours)

	// A trailing nil override closes the date even after an open entry
	settings.CustomHours = append(settings.CustomHours, models.DateOverride{Date: "2024-06-10"})
	assert.Nil(t, ResolveOperatingHours(date("2024-06-10"), &settings))
}

func TestResolveDoesNotMutateSettings(t *testing.T) {
	settings := baseSettings()
	hours := ResolveOperatingHours(date("2024-06-10"), &settings)
	require.NotNil(t, hours)

	hours.StartTime = "00:00"
	assert.Equal(t, "09:00", settings.RegularHours.StartTime)
}
