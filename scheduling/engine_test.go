package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinic-api/models"
)

func TestComputeAvailableSlotsEndToEnd(t *testing.T) {
	settings := baseSettings() // 09:00-17:00, no weekend hours
	service := models.Service{Name: "Checkup", DurationMinutes: 30}
	bookings := []models.Appointment{
		booking("2024-06-10", "10:00", 60, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, bookings) // Monday
	require.NoError(t, err)

	// Before the booked hour: 09:00..09:30, then nothing until 11:00
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "11:00"}, slots[:4])
	// Last slot ends exactly at closing
	assert.Equal(t, "16:30", slots[len(slots)-1])
	// 31 candidates minus the 5 starts overlapping [10:00, 11:00)
	assert.Len(t, slots, 26)
}

func TestComputeAvailableSlotsClinicClosed(t *testing.T) {
	settings := baseSettings()
	settings.IsOpen = false
	service := models.Service{DurationMinutes: 30}

	slots, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsClosedDay(t *testing.T) {
	settings := baseSettings()
	settings.CustomHours = models.DateOverrideList{{Date: "2024-06-10", Hours: nil}}
	service := models.Service{DurationMinutes: 30}

	// ClosedDay is a valid empty result, not an error
	slots, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsSaturdayWithoutHours(t *testing.T) {
	settings := baseSettings()
	service := models.Service{DurationMinutes: 30}
	bookings := []models.Appointment{
		booking("2024-06-08", "10:00", 30, models.StatusConfirmed),
	}

	slots, err := ComputeAvailableSlots(date("2024-06-08"), service, settings, bookings)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsNeverPastClosing(t *testing.T) {
	settings := baseSettings()
	service := models.Service{DurationMinutes: 45}

	slots, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, nil)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// 16:15 + 45min = 17:00; anything later would run past closing
	assert.Equal(t, "16:15", slots[len(slots)-1])
}

func TestComputeAvailableSlotsIdempotent(t *testing.T) {
	settings := baseSettings()
	service := models.Service{DurationMinutes: 30}
	bookings := []models.Appointment{
		booking("2024-06-10", "09:30", 90, models.StatusPending),
		booking("2024-06-10", "14:00", 30, models.StatusConfirmed),
	}

	first, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, bookings)
	require.NoError(t, err)
	second, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, bookings)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAvailableSlotsInvalidDuration(t *testing.T) {
	settings := baseSettings()
	service := models.Service{DurationMinutes: 0}

	_, err := ComputeAvailableSlots(date("2024-06-10"), service, settings, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
